package dto

import "github.com/jhoicas/netsales-api/internal/domain/entity"

// CreateSaleRequest entrada para registrar ventas de una red en un día.
type CreateSaleRequest struct {
	Date             string `json:"date"`
	NetworkNumber    int    `json:"networkNumber"`
	MastercardAmount Amount `json:"mastercardAmount"`
	MadaAmount       Amount `json:"madaAmount"`
	VisaAmount       Amount `json:"visaAmount"`
	GCCAmount        Amount `json:"gccAmount"`
	EmployeeID       string `json:"employeeId"`
}

// UpdateSaleRequest entidad completa enviada por el cliente.
// ID, Total y EmployeeID se ignoran: el total se recalcula y el dueño no cambia.
type UpdateSaleRequest struct {
	ID               string `json:"id,omitempty"`
	Date             string `json:"date"`
	NetworkNumber    int    `json:"networkNumber"`
	MastercardAmount Amount `json:"mastercardAmount"`
	MadaAmount       Amount `json:"madaAmount"`
	VisaAmount       Amount `json:"visaAmount"`
	GCCAmount        Amount `json:"gccAmount"`
	Total            Amount `json:"total"`
	EmployeeID       string `json:"employeeId,omitempty"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	NetworkNumber    int    `json:"networkNumber"`
	MastercardAmount Amount `json:"mastercardAmount"`
	MadaAmount       Amount `json:"madaAmount"`
	VisaAmount       Amount `json:"visaAmount"`
	GCCAmount        Amount `json:"gccAmount"`
	Total            Amount `json:"total"`
	EmployeeID       string `json:"employeeId"`
}

// NewSaleResponse mapea la entidad a su forma de transporte.
func NewSaleResponse(s *entity.SaleEntry) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:               s.ID,
		Date:             s.Date,
		NetworkNumber:    s.NetworkNumber,
		MastercardAmount: NewAmount(s.MastercardAmount),
		MadaAmount:       NewAmount(s.MadaAmount),
		VisaAmount:       NewAmount(s.VisaAmount),
		GCCAmount:        NewAmount(s.GCCAmount),
		Total:            NewAmount(s.Total),
		EmployeeID:       s.EmployeeID,
	}
}

// Entity convierte la respuesta de vuelta a la entidad de dominio.
func (r SaleResponse) Entity() entity.SaleEntry {
	return entity.SaleEntry{
		ID:               r.ID,
		Date:             r.Date,
		NetworkNumber:    r.NetworkNumber,
		MastercardAmount: r.MastercardAmount.Decimal,
		MadaAmount:       r.MadaAmount.Decimal,
		VisaAmount:       r.VisaAmount.Decimal,
		GCCAmount:        r.GCCAmount.Decimal,
		Total:            r.Total.Decimal,
		EmployeeID:       r.EmployeeID,
	}
}
