package repository

import (
	"context"

	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetByID, Update y Delete devuelven domain.ErrInvalidID si el id no tiene el formato
// del almacén y domain.ErrNotFound si no existe.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
