package entity

import "github.com/shopspring/decimal"

// DateLayout formato de calendario de SaleEntry.Date.
const DateLayout = "2006-01-02"

// SaleEntry ventas con tarjeta de un terminal (red) en un día, desglosadas por esquema.
// Total = Mastercard + Mada + Visa + GCC; lo recalcula el servidor en cada escritura.
type SaleEntry struct {
	ID               string
	Date             string
	NetworkNumber    int
	MastercardAmount decimal.Decimal
	MadaAmount       decimal.Decimal
	VisaAmount       decimal.Decimal
	GCCAmount        decimal.Decimal
	Total            decimal.Decimal
	EmployeeID       string
}
