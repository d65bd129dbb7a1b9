// Package session reúne los proveedores del cliente: cada mutación llama
// primero a la API y solo despacha al estado local si la llamada tuvo éxito.
package session

import (
	"context"
	"errors"

	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

var (
	// ErrRosterNotLoaded login de empleado antes de cargar la nómina.
	ErrRosterNotLoaded = errors.New("la lista de empleados no está cargada")
	// ErrInvalidCredentials usuario o contraseña incorrectos.
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
)

// API puerto remoto que consumen los proveedores (*api.Client lo implementa).
type API interface {
	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	CreateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error)
	UpdateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	ListSales(ctx context.Context) ([]entity.SaleEntry, error)
	CreateSale(ctx context.Context, s entity.SaleEntry) (entity.SaleEntry, error)
	UpdateSale(ctx context.Context, s entity.SaleEntry) (entity.SaleEntry, error)
	DeleteSale(ctx context.Context, id string) error
}

// Session estado de una ejecución del cliente: nómina, ventas y admin.
type Session struct {
	Employees *Employees
	Sales     *Sales
	Admin     *Admin
}

// New crea una sesión vacía; adminSecret es la clave de administrador configurada.
func New(client API, adminSecret string) *Session {
	return &Session{
		Employees: NewEmployees(client),
		Sales:     NewSales(client),
		Admin:     NewAdmin(adminSecret),
	}
}

// Load trae ambas colecciones (fetch-on-load).
func (s *Session) Load(ctx context.Context) error {
	if err := s.Employees.Load(ctx); err != nil {
		return err
	}
	return s.Sales.Load(ctx)
}

// Logout cierra la sesión de empleado y la de administrador.
func (s *Session) Logout() {
	s.Employees.Logout()
	s.Admin.Logout()
}
