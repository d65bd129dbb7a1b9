package session

import (
	"context"

	"github.com/jhoicas/netsales-api/internal/client/state"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// Employees proveedor de la nómina y del login de empleados.
type Employees struct {
	api    API
	store  *state.EmployeeStore
	loaded bool
}

func NewEmployees(client API) *Employees {
	return &Employees{api: client, store: state.NewEmployeeStore()}
}

// State estado actual de la nómina.
func (p *Employees) State() state.EmployeesState { return p.store.State() }

// Current empleado con sesión, nil si no hay.
func (p *Employees) Current() *entity.Employee { return p.store.State().CurrentUser }

func (p *Employees) Load(ctx context.Context) error {
	list, err := p.api.ListEmployees(ctx)
	if err != nil {
		return err
	}
	p.store.Dispatch(state.SetEmployees{Employees: list})
	p.loaded = true
	return nil
}

// Login busca (username, password) por igualdad exacta en la nómina cargada.
// Si falla, el estado no cambia.
func (p *Employees) Login(username, password string) (entity.Employee, error) {
	if !p.loaded {
		return entity.Employee{}, ErrRosterNotLoaded
	}
	for _, e := range p.store.State().Employees {
		if e.Username == username && e.PasswordHash == password {
			p.store.Dispatch(state.Login{Employee: e})
			return e, nil
		}
	}
	return entity.Employee{}, ErrInvalidCredentials
}

func (p *Employees) Logout() { p.store.Dispatch(state.Logout{}) }

func (p *Employees) Add(ctx context.Context, e entity.Employee) (entity.Employee, error) {
	created, err := p.api.CreateEmployee(ctx, e)
	if err != nil {
		return entity.Employee{}, err
	}
	p.store.Dispatch(state.AddEmployee{Employee: created})
	return created, nil
}

func (p *Employees) Update(ctx context.Context, e entity.Employee) (entity.Employee, error) {
	updated, err := p.api.UpdateEmployee(ctx, e)
	if err != nil {
		return entity.Employee{}, err
	}
	p.store.Dispatch(state.UpdateEmployee{Employee: updated})
	return updated, nil
}

func (p *Employees) Delete(ctx context.Context, id string) error {
	if err := p.api.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	p.store.Dispatch(state.DeleteEmployee{ID: id})
	return nil
}

// Find busca un empleado por ID en la nómina cargada.
func (p *Employees) Find(id string) (entity.Employee, bool) {
	for _, e := range p.store.State().Employees {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Employee{}, false
}
