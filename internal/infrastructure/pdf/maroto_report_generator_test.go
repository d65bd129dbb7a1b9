package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netsales-api/internal/application/report"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

func TestMarotoReportGenerator_Export(t *testing.T) {
	sales := []entity.SaleEntry{{
		ID: "a", Date: "2024-01-01", NetworkNumber: 1, EmployeeID: "e1",
		VisaAmount: decimal.NewFromInt(15), Total: decimal.NewFromInt(15),
	}}
	r := report.Daily(sales, "2024-01-01").WithEmployeeNames([]entity.Employee{{ID: "e1", Name: "Ahmed"}})

	g := NewMarotoReportGenerator()
	out, err := g.Export(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "pdf", g.Extension())
}

func TestMarotoReportGenerator_EmptyDay(t *testing.T) {
	out, err := NewMarotoReportGenerator().Export(context.Background(), report.Daily(nil, "2024-01-01"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
