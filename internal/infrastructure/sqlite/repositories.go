package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/domain/repository"
)

type employeeRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Branch       string `db:"branch"`
}

func (r employeeRow) entity() *entity.Employee {
	return &entity.Employee{
		ID:           r.ID,
		Name:         r.Name,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Branch:       entity.Branch(r.Branch),
	}
}

// Los montos se guardan como TEXT para no perder precisión.
type saleRow struct {
	ID               string          `db:"id"`
	Date             string          `db:"sale_date"`
	NetworkNumber    int             `db:"network_number"`
	MastercardAmount decimal.Decimal `db:"mastercard_amount"`
	MadaAmount       decimal.Decimal `db:"mada_amount"`
	VisaAmount       decimal.Decimal `db:"visa_amount"`
	GCCAmount        decimal.Decimal `db:"gcc_amount"`
	Total            decimal.Decimal `db:"total"`
	EmployeeID       string          `db:"employee_id"`
}

func toSaleRow(s *entity.SaleEntry) saleRow {
	return saleRow{
		ID:               s.ID,
		Date:             s.Date,
		NetworkNumber:    s.NetworkNumber,
		MastercardAmount: s.MastercardAmount,
		MadaAmount:       s.MadaAmount,
		VisaAmount:       s.VisaAmount,
		GCCAmount:        s.GCCAmount,
		Total:            s.Total,
		EmployeeID:       s.EmployeeID,
	}
}

func (r saleRow) entity() *entity.SaleEntry {
	return &entity.SaleEntry{
		ID:               r.ID,
		Date:             r.Date,
		NetworkNumber:    r.NetworkNumber,
		MastercardAmount: r.MastercardAmount,
		MadaAmount:       r.MadaAmount,
		VisaAmount:       r.VisaAmount,
		GCCAmount:        r.GCCAmount,
		Total:            r.Total,
		EmployeeID:       r.EmployeeID,
	}
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return nil
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EmployeeRepo repositorio de empleados sobre SQLite.
type EmployeeRepo struct {
	db *sqlx.DB
}

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	var rows []employeeRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, username, password_hash, branch FROM employees ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	out := make([]*entity.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var row employeeRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, username, password_hash, branch FROM employees WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return row.entity(), nil
}

func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	row := employeeRow{
		ID:           uuid.New().String(),
		Name:         employee.Name,
		Username:     employee.Username,
		PasswordHash: employee.PasswordHash,
		Branch:       string(employee.Branch),
	}
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO employees (id, name, username, password_hash, branch)
        VALUES (:id, :name, :username, :password_hash, :branch)`, row)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return row.entity(), nil
}

func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	if err := checkID(employee.ID); err != nil {
		return nil, err
	}
	row := employeeRow{
		ID:           employee.ID,
		Name:         employee.Name,
		Username:     employee.Username,
		PasswordHash: employee.PasswordHash,
		Branch:       string(employee.Branch),
	}
	res, err := r.db.NamedExecContext(ctx, `UPDATE employees
        SET name = :name, username = :username, password_hash = :password_hash, branch = :branch
        WHERE id = :id`, row)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}
	return row.entity(), nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return affected(res)
}

// SaleRepo repositorio de ventas sobre SQLite.
type SaleRepo struct {
	db *sqlx.DB
}

var _ repository.SaleRepository = (*SaleRepo)(nil)

// NewSaleRepository construye el repositorio.
func NewSaleRepository(db *sqlx.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

const saleColumns = `id, sale_date, network_number, mastercard_amount, mada_amount, visa_amount, gcc_amount, total, employee_id`

func (r *SaleRepo) List(ctx context.Context) ([]*entity.SaleEntry, error) {
	var rows []saleRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+saleColumns+` FROM sales ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	out := make([]*entity.SaleEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.SaleEntry, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var row saleRow
	err := r.db.GetContext(ctx, &row, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return row.entity(), nil
}

func (r *SaleRepo) Create(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	row := toSaleRow(sale)
	row.ID = uuid.New().String()
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO sales (`+saleColumns+`)
        VALUES (:id, :sale_date, :network_number, :mastercard_amount, :mada_amount, :visa_amount, :gcc_amount, :total, :employee_id)`, row)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	return row.entity(), nil
}

func (r *SaleRepo) Update(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	if err := checkID(sale.ID); err != nil {
		return nil, err
	}
	row := toSaleRow(sale)
	res, err := r.db.NamedExecContext(ctx, `UPDATE sales
        SET sale_date = :sale_date, network_number = :network_number,
            mastercard_amount = :mastercard_amount, mada_amount = :mada_amount,
            visa_amount = :visa_amount, gcc_amount = :gcc_amount,
            total = :total, employee_id = :employee_id
        WHERE id = :id`, row)
	if err != nil {
		return nil, fmt.Errorf("update sale: %w", err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}
	return row.entity(), nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return affected(res)
}
