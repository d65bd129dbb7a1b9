package dto

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount monto monetario en el cuerpo JSON.
// Se serializa como número; al leer acepta números o cadenas numéricas
// y cualquier otro valor se toma como 0.
type Amount struct {
	decimal.Decimal
}

// NewAmount envuelve un decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON escribe el monto sin comillas.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON nunca falla: la entrada no numérica vale 0.
func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	a.Decimal = ParseAmount(raw)
	return nil
}

// ParseAmount convierte texto a monto; vacío o inválido vale 0.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
