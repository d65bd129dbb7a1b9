package dto

import "github.com/jhoicas/netsales-api/internal/domain/entity"

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Branch       string `json:"branch"`
}

// UpdateEmployeeRequest entidad completa enviada por el cliente.
// ID se ignora (manda el de la ruta); PasswordHash vacío conserva la credencial guardada.
type UpdateEmployeeRequest struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Branch       string `json:"branch"`
}

// EmployeeResponse salida de un empleado. Incluye la credencial porque
// el login de empleados se resuelve en el cliente.
type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Branch       string `json:"branch"`
}

// NewEmployeeResponse mapea la entidad a su forma de transporte.
func NewEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Branch:       string(e.Branch),
	}
}

// Entity convierte la respuesta de vuelta a la entidad de dominio.
func (r EmployeeResponse) Entity() entity.Employee {
	return entity.Employee{
		ID:           r.ID,
		Name:         r.Name,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Branch:       entity.Branch(r.Branch),
	}
}
