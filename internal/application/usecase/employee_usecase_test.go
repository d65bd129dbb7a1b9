package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netsales-api/internal/application/dto"
	"github.com/jhoicas/netsales-api/internal/application/usecase"
	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/infrastructure/memory"
)

func newEmployeeUC() *usecase.EmployeeUseCase {
	return usecase.NewEmployeeUseCase(memory.NewEmployeeRepository())
}

func createAhmed(t *testing.T, uc *usecase.EmployeeUseCase) *dto.EmployeeResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:         "أحمد محمود",
		Username:     "ahmed",
		PasswordHash: "123",
		Branch:       string(entity.BranchTuwaiq),
	})
	require.NoError(t, err)
	return out
}

func TestEmployeeUseCase_Create(t *testing.T) {
	uc := newEmployeeUC()
	out := createAhmed(t, uc)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ahmed", out.Username)
	assert.Equal(t, "123", out.PasswordHash)
	assert.Equal(t, string(entity.BranchTuwaiq), out.Branch)
}

func TestEmployeeUseCase_CreateDefaultsBranch(t *testing.T) {
	uc := newEmployeeUC()
	out, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{Name: "x", Username: "x", PasswordHash: "1"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.Branches[0]), out.Branch)
}

func TestEmployeeUseCase_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   dto.CreateEmployeeRequest
	}{
		{"sin nombre", dto.CreateEmployeeRequest{Username: "u", PasswordHash: "p"}},
		{"sin usuario", dto.CreateEmployeeRequest{Name: "n", PasswordHash: "p"}},
		{"sin contraseña", dto.CreateEmployeeRequest{Name: "n", Username: "u"}},
		{"sucursal desconocida", dto.CreateEmployeeRequest{Name: "n", Username: "u", PasswordHash: "p", Branch: "فرع الرياض"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newEmployeeUC().Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Una contraseña vacía en la edición conserva la guardada.
func TestEmployeeUseCase_UpdateKeepsPasswordWhenEmpty(t *testing.T) {
	uc := newEmployeeUC()
	created := createAhmed(t, uc)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		ID:       "ignorado",
		Name:     "أحمد",
		Username: "ahmed2",
		Branch:   string(entity.BranchHazm),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "123", out.PasswordHash)
	assert.Equal(t, "ahmed2", out.Username)
	assert.Equal(t, string(entity.BranchHazm), out.Branch)

	out, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		Name: "أحمد", Username: "ahmed2", PasswordHash: "999", Branch: string(entity.BranchHazm),
	})
	require.NoError(t, err)
	assert.Equal(t, "999", out.PasswordHash)
}

// Una sucursal vacía en la edición conserva la guardada; una desconocida se rechaza.
func TestEmployeeUseCase_UpdateKeepsBranchWhenEmpty(t *testing.T) {
	uc := newEmployeeUC()
	created := createAhmed(t, uc)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		Name: "أحمد", Username: "ahmed",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Branch, out.Branch)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		Name: "أحمد", Username: "ahmed", Branch: "فرع الرياض",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUseCase_DeleteThenGet(t *testing.T) {
	uc := newEmployeeUC()
	created := createAhmed(t, uc)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	_, err := uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
