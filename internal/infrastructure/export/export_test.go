package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/netsales-api/internal/application/report"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

func sampleReport() *report.DailyReport {
	sales := []entity.SaleEntry{
		{ID: "a", Date: "2024-01-01", NetworkNumber: 2, EmployeeID: "e1",
			MastercardAmount: decimal.NewFromInt(10), Total: decimal.NewFromInt(10)},
		{ID: "b", Date: "2024-01-01", NetworkNumber: 1, EmployeeID: "ghost",
			MadaAmount: decimal.RequireFromString("20.5"), Total: decimal.RequireFromString("20.5")},
	}
	return report.Daily(sales, "2024-01-01").WithEmployeeNames([]entity.Employee{{ID: "e1", Name: "همدان"}})
}

func TestCSVExporter(t *testing.T) {
	out, err := NewCSVExporter().Export(context.Background(), sampleReport())
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "\ufeff"), "BOM al inicio")
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "\ufeff"), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "اسم الموظف,رقم الشبكة,مستر كارد,مدى,فيزا,الشبكة الخليجية,الإجمالي", lines[0])
	assert.Equal(t, "غير معروف,1,0,20.5,0,0,20.5", lines[1])
	assert.Equal(t, "همدان,2,10,0,0,0,10", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "إجمالي كل شبكة,,10,20.5,0,0,30.5", lines[4])
	assert.Equal(t, "csv", NewCSVExporter().Extension())
}

func TestXLSXExporter(t *testing.T) {
	out, err := NewXLSXExporter().Export(context.Background(), sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, "اسم الموظف", rows[0][0])
	assert.Equal(t, "غير معروف", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "إجمالي كل شبكة", rows[4][0])
	assert.Equal(t, "30.5", rows[4][6])
}
