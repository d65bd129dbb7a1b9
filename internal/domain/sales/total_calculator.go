package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// AmountScale decimales persistidos (halalas).
const AmountScale = 2

// maxAmount cota exclusiva de NUMERIC(14,2), aplicada también al total.
var maxAmount = decimal.New(1, 12)

// CalculateTotal suma los cuatro esquemas de pago (servicio de dominio).
// No rechaza montos negativos.
func CalculateTotal(mastercard, mada, visa, gcc decimal.Decimal) decimal.Decimal {
	return mastercard.Add(mada).Add(visa).Add(gcc)
}

// ApplyTotal recalcula Total a partir de los montos de la venta.
func ApplyTotal(s *entity.SaleEntry) {
	s.Total = CalculateTotal(s.MastercardAmount, s.MadaAmount, s.VisaAmount, s.GCCAmount)
}

// Normalize redondea cada monto a halalas y luego recalcula Total, de modo que
// el total guardado sea la suma de los montos guardados en cualquier almacén.
func Normalize(s *entity.SaleEntry) error {
	for _, a := range []*decimal.Decimal{&s.MastercardAmount, &s.MadaAmount, &s.VisaAmount, &s.GCCAmount} {
		*a = a.Round(AmountScale)
	}
	ApplyTotal(s)
	for _, a := range []decimal.Decimal{s.MastercardAmount, s.MadaAmount, s.VisaAmount, s.GCCAmount, s.Total} {
		if a.Abs().GreaterThanOrEqual(maxAmount) {
			return fmt.Errorf("%w: monto fuera de rango %s", domain.ErrInvalidInput, a)
		}
	}
	return nil
}
