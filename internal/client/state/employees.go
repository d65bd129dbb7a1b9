// Package state contiene los reductores puros del lado cliente para la
// nómina de empleados y las ventas.
package state

import "github.com/jhoicas/netsales-api/internal/domain/entity"

// EmployeesState colección de empleados y el empleado con sesión (nil si no hay).
type EmployeesState struct {
	Employees   []entity.Employee
	CurrentUser *entity.Employee
}

// EmployeeAction acción aplicable a EmployeesState.
type EmployeeAction interface{ employeeAction() }

type (
	// SetEmployees reemplaza la colección completa.
	SetEmployees struct{ Employees []entity.Employee }
	// AddEmployee agrega al final.
	AddEmployee struct{ Employee entity.Employee }
	// UpdateEmployee reemplaza el empleado con el mismo ID.
	UpdateEmployee struct{ Employee entity.Employee }
	// DeleteEmployee elimina por ID.
	DeleteEmployee struct{ ID string }
	// Login fija el empleado con sesión.
	Login struct{ Employee entity.Employee }
	// Logout limpia el empleado con sesión.
	Logout struct{}
)

func (SetEmployees) employeeAction()   {}
func (AddEmployee) employeeAction()    {}
func (UpdateEmployee) employeeAction() {}
func (DeleteEmployee) employeeAction() {}
func (Login) employeeAction()          {}
func (Logout) employeeAction()         {}

// ReduceEmployees devuelve el nuevo estado; nunca modifica el slice de entrada.
func ReduceEmployees(s EmployeesState, a EmployeeAction) EmployeesState {
	switch a := a.(type) {
	case SetEmployees:
		s.Employees = clone(a.Employees)
	case AddEmployee:
		s.Employees = append(clone(s.Employees), a.Employee)
	case UpdateEmployee:
		i := indexOf(s.Employees, a.Employee.ID, employeeID)
		if i < 0 {
			return s
		}
		list := clone(s.Employees)
		list[i] = a.Employee
		s.Employees = list
	case DeleteEmployee:
		i := indexOf(s.Employees, a.ID, employeeID)
		if i < 0 {
			return s
		}
		s.Employees = without(s.Employees, i)
	case Login:
		u := a.Employee
		s.CurrentUser = &u
	case Logout:
		s.CurrentUser = nil
	}
	return s
}

func employeeID(e entity.Employee) string { return e.ID }

// EmployeeStore contenedor del estado actual. No es seguro para uso concurrente.
type EmployeeStore struct {
	state EmployeesState
}

// NewEmployeeStore crea el contenedor con el estado inicial vacío.
func NewEmployeeStore() *EmployeeStore { return &EmployeeStore{} }

// Dispatch aplica la acción y devuelve el estado resultante.
func (s *EmployeeStore) Dispatch(a EmployeeAction) EmployeesState {
	s.state = ReduceEmployees(s.state, a)
	return s.state
}

// State estado actual.
func (s *EmployeeStore) State() EmployeesState { return s.state }
