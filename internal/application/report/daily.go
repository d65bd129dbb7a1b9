// Package report arma los reportes diarios de ventas con tarjeta.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// UnknownEmployee nombre mostrado cuando la venta apunta a un empleado inexistente.
const UnknownEmployee = "غير معروف"

// Totals sumas por esquema de pago.
type Totals struct {
	Mastercard decimal.Decimal
	Mada       decimal.Decimal
	Visa       decimal.Decimal
	GCC        decimal.Decimal
	Grand      decimal.Decimal
}

// Row venta del reporte con el nombre resuelto del empleado.
type Row struct {
	Sale         entity.SaleEntry
	EmployeeName string
}

// DailyReport ventas de un día ordenadas por número de red.
type DailyReport struct {
	Date       string
	EmployeeID string // vacío en el reporte de administración
	Rows       []Row
	Totals     Totals
}

// Daily reporte de administración: todas las ventas de date.
func Daily(sales []entity.SaleEntry, date string) *DailyReport {
	return build(sales, date, "")
}

// EmployeeDaily reporte de un empleado: sus ventas de date.
func EmployeeDaily(sales []entity.SaleEntry, employeeID, date string) *DailyReport {
	return build(sales, date, employeeID)
}

func build(sales []entity.SaleEntry, date, employeeID string) *DailyReport {
	r := &DailyReport{Date: date, EmployeeID: employeeID, Rows: []Row{}}
	for _, s := range sales {
		if s.Date != date {
			continue
		}
		if employeeID != "" && s.EmployeeID != employeeID {
			continue
		}
		r.Rows = append(r.Rows, Row{Sale: s})
	}
	// Estable: empates de red conservan el orden del almacén.
	sort.SliceStable(r.Rows, func(i, j int) bool {
		return r.Rows[i].Sale.NetworkNumber < r.Rows[j].Sale.NetworkNumber
	})
	r.Totals = sum(r.Rows)
	return r
}

func sum(rows []Row) Totals {
	var t Totals
	for _, row := range rows {
		t.Mastercard = t.Mastercard.Add(row.Sale.MastercardAmount)
		t.Mada = t.Mada.Add(row.Sale.MadaAmount)
		t.Visa = t.Visa.Add(row.Sale.VisaAmount)
		t.GCC = t.GCC.Add(row.Sale.GCCAmount)
	}
	t.Grand = t.Mastercard.Add(t.Mada).Add(t.Visa).Add(t.GCC)
	return t
}

// WithEmployeeNames resuelve el nombre de cada fila contra el roster.
func (r *DailyReport) WithEmployeeNames(employees []entity.Employee) *DailyReport {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	for i := range r.Rows {
		name, ok := names[r.Rows[i].Sale.EmployeeID]
		if !ok {
			name = UnknownEmployee
		}
		r.Rows[i].EmployeeName = name
	}
	return r
}

// Empty indica si no hubo ventas ese día.
func (r *DailyReport) Empty() bool {
	return len(r.Rows) == 0
}
