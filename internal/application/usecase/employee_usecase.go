package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/netsales-api/internal/application/dto"
	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List devuelve todos los empleados en el orden del almacén.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *dto.NewEmployeeResponse(e))
	}
	return items, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(e), nil
}

// Create registra un empleado. Sin sucursal se asigna la primera conocida.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &entity.Employee{
		Name:         strings.TrimSpace(in.Name),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: in.PasswordHash,
		Branch:       entity.Branch(in.Branch),
	}
	if e.Branch == "" {
		e.Branch = entity.Branches[0]
	}
	if e.PasswordHash == "" {
		return nil, fmt.Errorf("%w: password_hash requerido", domain.ErrInvalidInput)
	}
	if err := validateEmployee(e); err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(created), nil
}

// Update reemplaza los campos del empleado. El id de la ruta manda sobre el del cuerpo
// y una credencial o sucursal vacías conservan las guardadas.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e := &entity.Employee{
		ID:           current.ID,
		Name:         strings.TrimSpace(in.Name),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: in.PasswordHash,
		Branch:       entity.Branch(in.Branch),
	}
	if e.PasswordHash == "" {
		e.PasswordHash = current.PasswordHash
	}
	if e.Branch == "" {
		e.Branch = current.Branch
	}
	if err := validateEmployee(e); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(updated), nil
}

// Delete elimina un empleado. Sus ventas quedan en el almacén.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateEmployee(e *entity.Employee) error {
	switch {
	case e.Name == "":
		return fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	case e.Username == "":
		return fmt.Errorf("%w: username requerido", domain.ErrInvalidInput)
	case !e.Branch.Valid():
		return fmt.Errorf("%w: sucursal desconocida %q", domain.ErrInvalidInput, e.Branch)
	}
	return nil
}
