package state_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netsales-api/internal/client/state"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// ─── Employees ──────────────────────────────────────────────────────────────

func roster() []entity.Employee {
	return []entity.Employee{
		{ID: "e1", Name: "أحمد محمود", Username: "ahmed", PasswordHash: "123", Branch: entity.BranchTuwaiq},
		{ID: "e2", Name: "فاطمة علي", Username: "fatima", PasswordHash: "456", Branch: entity.BranchHazm},
	}
}

func TestReduceEmployees_SetAddUpdateDelete(t *testing.T) {
	s := state.ReduceEmployees(state.EmployeesState{}, state.SetEmployees{Employees: roster()})
	require.Len(t, s.Employees, 2)

	s = state.ReduceEmployees(s, state.AddEmployee{Employee: entity.Employee{ID: "e3", Username: "101"}})
	require.Len(t, s.Employees, 3)
	assert.Equal(t, "e3", s.Employees[2].ID)

	s = state.ReduceEmployees(s, state.UpdateEmployee{Employee: entity.Employee{ID: "e1", Name: "أحمد", Username: "ahmed"}})
	assert.Equal(t, "أحمد", s.Employees[0].Name)
	assert.Equal(t, "e2", s.Employees[1].ID)

	s = state.ReduceEmployees(s, state.DeleteEmployee{ID: "e2"})
	require.Len(t, s.Employees, 2)
	assert.Equal(t, []string{"e1", "e3"}, []string{s.Employees[0].ID, s.Employees[1].ID})
}

func TestReduceEmployees_DoesNotMutateInput(t *testing.T) {
	in := state.EmployeesState{Employees: roster()}
	_ = state.ReduceEmployees(in, state.UpdateEmployee{Employee: entity.Employee{ID: "e1", Name: "otro"}})
	_ = state.ReduceEmployees(in, state.DeleteEmployee{ID: "e1"})
	assert.Equal(t, roster(), in.Employees)
}

func TestReduceEmployees_UnmatchedIsNoop(t *testing.T) {
	in := state.EmployeesState{Employees: roster()}
	assert.Equal(t, in, state.ReduceEmployees(in, state.UpdateEmployee{Employee: entity.Employee{ID: "nope"}}))
	assert.Equal(t, in, state.ReduceEmployees(in, state.DeleteEmployee{ID: "nope"}))
}

func TestReduceEmployees_LoginLogout(t *testing.T) {
	store := state.NewEmployeeStore()
	store.Dispatch(state.SetEmployees{Employees: roster()})
	s := store.Dispatch(state.Login{Employee: roster()[1]})
	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, "fatima", s.CurrentUser.Username)

	s = store.Dispatch(state.Logout{})
	assert.Nil(t, s.CurrentUser)
	assert.Len(t, store.State().Employees, 2)
}

// ─── Sales ──────────────────────────────────────────────────────────────────

func TestReduceSales(t *testing.T) {
	store := state.NewSalesStore()
	store.Dispatch(state.SetSales{Sales: []entity.SaleEntry{{ID: "s1", NetworkNumber: 1}}})
	store.Dispatch(state.AddSale{Sale: entity.SaleEntry{ID: "s2", NetworkNumber: 2}})

	before := store.State()
	s := store.Dispatch(state.UpdateSale{Sale: entity.SaleEntry{ID: "s2", NetworkNumber: 5, Total: decimal.NewFromInt(9)}})
	assert.Equal(t, 5, s.Sales[1].NetworkNumber)
	assert.Equal(t, 2, before.Sales[1].NetworkNumber)

	assert.Equal(t, s, state.ReduceSales(s, state.DeleteSale{ID: "zzz"}))

	s = store.Dispatch(state.DeleteSale{ID: "s1"})
	require.Len(t, s.Sales, 1)
	assert.Equal(t, "s2", s.Sales[0].ID)
}
