package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const selectEmployees = `
		SELECT id::text, name, username, password_hash, branch
		FROM employees`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var branch string
	if err := row.Scan(&e.ID, &e.Name, &e.Username, &e.PasswordHash, &branch); err != nil {
		return nil, err
	}
	e.Branch = entity.Branch(branch)
	return &e, nil
}

// List devuelve los empleados en orden de alta.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.db.Query(ctx, selectEmployees+` ORDER BY created_at, id`)
	if err != nil {
		return nil, translateError("list employees", err)
	}
	defer rows.Close()
	var out []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, translateError("scan employee", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list employees", err)
	}
	return out, nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	e, err := scanEmployee(r.db.QueryRow(ctx, selectEmployees+` WHERE id = $1`, id))
	if err != nil {
		return nil, translateError("get employee", err)
	}
	return e, nil
}

// Create persiste un nuevo empleado con id generado.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	e := *employee
	e.ID = uuid.New().String()
	query := `
		INSERT INTO employees (id, name, username, password_hash, branch)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, query, e.ID, e.Name, e.Username, e.PasswordHash, string(e.Branch)); err != nil {
		return nil, translateError("insert employee", err)
	}
	return &e, nil
}

// Update reemplaza los campos de un empleado existente.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	if err := checkID(employee.ID); err != nil {
		return nil, err
	}
	query := `
		UPDATE employees
		SET name = $2, username = $3, password_hash = $4, branch = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, employee.ID, employee.Name, employee.Username, employee.PasswordHash, string(employee.Branch))
	if err != nil {
		return nil, translateError("update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	e := *employee
	return &e, nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translateError("delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
