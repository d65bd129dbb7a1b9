package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netsales-api/internal/client/session"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// fakeAPI implementación en memoria del puerto remoto; fail fuerza errores.
type fakeAPI struct {
	employees []entity.Employee
	sales     []entity.SaleEntry
	fail      error
	seq       int
}

func (f *fakeAPI) nextID() string {
	f.seq++
	return string(rune('a'+f.seq-1)) + "-id"
}

func (f *fakeAPI) ListEmployees(context.Context) ([]entity.Employee, error) {
	return f.employees, f.fail
}
func (f *fakeAPI) CreateEmployee(_ context.Context, e entity.Employee) (entity.Employee, error) {
	if f.fail != nil {
		return entity.Employee{}, f.fail
	}
	e.ID = f.nextID()
	f.employees = append(f.employees, e)
	return e, nil
}
func (f *fakeAPI) UpdateEmployee(_ context.Context, e entity.Employee) (entity.Employee, error) {
	return e, f.fail
}
func (f *fakeAPI) DeleteEmployee(context.Context, string) error { return f.fail }
func (f *fakeAPI) ListSales(context.Context) ([]entity.SaleEntry, error) {
	return f.sales, f.fail
}
func (f *fakeAPI) CreateSale(_ context.Context, s entity.SaleEntry) (entity.SaleEntry, error) {
	if f.fail != nil {
		return entity.SaleEntry{}, f.fail
	}
	s.ID = f.nextID()
	return s, nil
}
func (f *fakeAPI) UpdateSale(_ context.Context, s entity.SaleEntry) (entity.SaleEntry, error) {
	return s, f.fail
}
func (f *fakeAPI) DeleteSale(context.Context, string) error { return f.fail }

func newFake() *fakeAPI {
	return &fakeAPI{employees: []entity.Employee{
		{ID: "e1", Name: "أحمد محمود", Username: "ahmed", PasswordHash: "123", Branch: entity.BranchTuwaiq},
		{ID: "e2", Name: "فاطمة علي", Username: "fatima", PasswordHash: "456", Branch: entity.BranchHazm},
	}}
}

// ─── Auth ───────────────────────────────────────────────────────────────────

func TestEmployees_LoginRequiresRoster(t *testing.T) {
	s := session.New(newFake(), "2525")
	_, err := s.Employees.Login("ahmed", "123")
	assert.ErrorIs(t, err, session.ErrRosterNotLoaded)
}

func TestEmployees_Login(t *testing.T) {
	s := session.New(newFake(), "2525")
	require.NoError(t, s.Load(context.Background()))

	_, err := s.Employees.Login("ahmed", "456")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	assert.Nil(t, s.Employees.Current())

	e, err := s.Employees.Login("fatima", "456")
	require.NoError(t, err)
	assert.Equal(t, "e2", e.ID)
	require.NotNil(t, s.Employees.Current())
	assert.Equal(t, "e2", s.Employees.Current().ID)
}

func TestAdmin_LoginAndSessionLogout(t *testing.T) {
	s := session.New(newFake(), "2525")
	require.NoError(t, s.Load(context.Background()))

	assert.False(t, s.Admin.Login("1234"))
	assert.True(t, s.Admin.Login("2525"))
	_, err := s.Employees.Login("ahmed", "123")
	require.NoError(t, err)

	s.Logout()
	assert.False(t, s.Admin.Authenticated())
	assert.Nil(t, s.Employees.Current())
}

func TestAdmin_EmptySecretNeverAuthenticates(t *testing.T) {
	assert.False(t, session.NewAdmin("").Login(""))
}

// ─── Write-through ──────────────────────────────────────────────────────────

func TestSales_WriteThrough(t *testing.T) {
	api := newFake()
	s := session.New(api, "2525")
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	created, err := s.Sales.Add(ctx, entity.SaleEntry{Date: "2024-01-01", NetworkNumber: 1, EmployeeID: "e1"})
	require.NoError(t, err)
	require.Len(t, s.Sales.State().Sales, 1)

	api.fail = errors.New("HTTP 500")
	_, err = s.Sales.Add(ctx, entity.SaleEntry{Date: "2024-01-01"})
	require.Error(t, err)
	assert.Len(t, s.Sales.State().Sales, 1)

	require.Error(t, s.Sales.Delete(ctx, created.ID))
	_, ok := s.Sales.Find(created.ID)
	assert.True(t, ok)

	api.fail = nil
	require.NoError(t, s.Sales.Delete(ctx, created.ID))
	assert.Empty(t, s.Sales.State().Sales)
}

func TestEmployees_WriteThrough(t *testing.T) {
	api := newFake()
	s := session.New(api, "2525")
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	added, err := s.Employees.Add(ctx, entity.Employee{Name: "همدان", Username: "101", PasswordHash: "123", Branch: entity.BranchOkaz})
	require.NoError(t, err)
	assert.Len(t, s.Employees.State().Employees, 3)

	added.Name = "همدان علي"
	_, err = s.Employees.Update(ctx, added)
	require.NoError(t, err)
	got, ok := s.Employees.Find(added.ID)
	require.True(t, ok)
	assert.Equal(t, "همدان علي", got.Name)

	api.fail = errors.New("boom")
	require.Error(t, s.Employees.Delete(ctx, added.ID))
	assert.Len(t, s.Employees.State().Employees, 3)
}
