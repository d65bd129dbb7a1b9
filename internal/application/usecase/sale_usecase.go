package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/netsales-api/internal/application/dto"
	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/domain/repository"
	"github.com/jhoicas/netsales-api/internal/domain/sales"
)

// SaleUseCase casos de uso CRUD para ventas con tarjeta.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// List devuelve todas las ventas en el orden del almacén.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.NewSaleResponse(s))
	}
	return items, nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewSaleResponse(s), nil
}

// Create registra una venta; el total siempre lo calcula el servidor.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	s := &entity.SaleEntry{
		Date:             strings.TrimSpace(in.Date),
		NetworkNumber:    in.NetworkNumber,
		MastercardAmount: in.MastercardAmount.Decimal,
		MadaAmount:       in.MadaAmount.Decimal,
		VisaAmount:       in.VisaAmount.Decimal,
		GCCAmount:        in.GCCAmount.Decimal,
		EmployeeID:       strings.TrimSpace(in.EmployeeID),
	}
	if s.EmployeeID == "" {
		return nil, fmt.Errorf("%w: employeeId requerido", domain.ErrInvalidInput)
	}
	if err := validateDate(s.Date); err != nil {
		return nil, err
	}
	if err := sales.Normalize(s); err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	return dto.NewSaleResponse(created), nil
}

// Update reemplaza fecha, red y montos. Id, total y employeeId del cuerpo se ignoran.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s := &entity.SaleEntry{
		ID:               current.ID,
		Date:             strings.TrimSpace(in.Date),
		NetworkNumber:    in.NetworkNumber,
		MastercardAmount: in.MastercardAmount.Decimal,
		MadaAmount:       in.MadaAmount.Decimal,
		VisaAmount:       in.VisaAmount.Decimal,
		GCCAmount:        in.GCCAmount.Decimal,
		EmployeeID:       current.EmployeeID,
	}
	if err := validateDate(s.Date); err != nil {
		return nil, err
	}
	if err := sales.Normalize(s); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, s)
	if err != nil {
		return nil, err
	}
	return dto.NewSaleResponse(updated), nil
}

// Delete elimina una venta por ID.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateDate(date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return nil
}
