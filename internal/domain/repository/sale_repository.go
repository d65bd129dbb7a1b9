package repository

import (
	"context"

	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para SaleEntry (DIP).
// Mismo contrato de errores que EmployeeRepository.
type SaleRepository interface {
	List(ctx context.Context) ([]*entity.SaleEntry, error)
	GetByID(ctx context.Context, id string) (*entity.SaleEntry, error)
	Create(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error)
	Update(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error)
	Delete(ctx context.Context, id string) error
}
