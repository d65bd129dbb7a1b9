package postgres

import (
	"context"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/pkg/config"
)

const employeeID = "7f1c2a4e-2222-4000-8000-000000000002"

func TestEmployeeRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "name", "username", "password_hash", "branch"}).
		AddRow(employeeID, "فاطمة علي", "fatima", "456", string(entity.BranchHazm))
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
		WithArgs(employeeID).
		WillReturnRows(rows)

	e, err := repo.GetByID(context.Background(), employeeID)
	require.NoError(t, err)
	assert.Equal(t, "fatima", e.Username)
	assert.Equal(t, entity.BranchHazm, e.Branch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)
	in := &entity.Employee{ID: employeeID, Name: "n", Username: "u", PasswordHash: "p", Branch: entity.BranchOkaz}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees")).
		WithArgs(in.ID, in.Name, in.Username, in.PasswordHash, string(in.Branch)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	out, err := repo.Update(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, *in, *out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_DeleteUnknown(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees")).
		WithArgs(employeeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewEmployeeRepository(mock).Delete(context.Background(), employeeID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildPoolConfig(t *testing.T) {
	cfg, err := BuildPoolConfig(config.DBConfig{DatabaseURL: "postgres://pos:secret@db:5432/pos_db?sslmode=disable"})
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.ConnConfig.Host)
	assert.Equal(t, "pos_db", cfg.ConnConfig.Database)
	assert.NotNil(t, cfg.AfterConnect)
}
