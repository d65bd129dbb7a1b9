package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// employee_id es texto sin FK: las ventas sobreviven al borrado del empleado.
type SaleRepo struct {
	db Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db Querier) *SaleRepo {
	return &SaleRepo{db: db}
}

const selectSales = `
		SELECT id::text, sale_date, network_number, mastercard_amount, mada_amount,
		       visa_amount, gcc_amount, total, employee_id
		FROM sales`

func scanSale(row pgx.Row) (*entity.SaleEntry, error) {
	var s entity.SaleEntry
	err := row.Scan(&s.ID, &s.Date, &s.NetworkNumber, &s.MastercardAmount, &s.MadaAmount,
		&s.VisaAmount, &s.GCCAmount, &s.Total, &s.EmployeeID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve las ventas en orden de alta.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.SaleEntry, error) {
	rows, err := r.db.Query(ctx, selectSales+` ORDER BY created_at, id`)
	if err != nil {
		return nil, translateError("list sales", err)
	}
	defer rows.Close()
	var out []*entity.SaleEntry
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, translateError("scan sale", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list sales", err)
	}
	return out, nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.SaleEntry, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	s, err := scanSale(r.db.QueryRow(ctx, selectSales+` WHERE id = $1`, id))
	if err != nil {
		return nil, translateError("get sale", err)
	}
	return s, nil
}

// Create persiste una nueva venta con id generado.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	s := *sale
	s.ID = uuid.New().String()
	query := `
		INSERT INTO sales (id, sale_date, network_number, mastercard_amount, mada_amount,
		                   visa_amount, gcc_amount, total, employee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query, s.ID, s.Date, s.NetworkNumber, s.MastercardAmount, s.MadaAmount,
		s.VisaAmount, s.GCCAmount, s.Total, s.EmployeeID)
	if err != nil {
		return nil, translateError("insert sale", err)
	}
	return &s, nil
}

// Update reemplaza fecha, red, montos, total y dueño de una venta existente.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	if err := checkID(sale.ID); err != nil {
		return nil, err
	}
	query := `
		UPDATE sales
		SET sale_date = $2, network_number = $3, mastercard_amount = $4, mada_amount = $5,
		    visa_amount = $6, gcc_amount = $7, total = $8, employee_id = $9, updated_at = now()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, sale.ID, sale.Date, sale.NetworkNumber, sale.MastercardAmount, sale.MadaAmount,
		sale.VisaAmount, sale.GCCAmount, sale.Total, sale.EmployeeID)
	if err != nil {
		return nil, translateError("update sale", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	s := *sale
	return &s, nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return translateError("delete sale", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
