package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/netsales-api/internal/application/report"
)

// utf8BOM permite que Excel abra el CSV con texto árabe correctamente.
const utf8BOM = "\ufeff"

var csvHeader = []string{"اسم الموظف", "رقم الشبكة", "مستر كارد", "مدى", "فيزا", "الشبكة الخليجية", "الإجمالي"}

const csvTotalsLabel = "إجمالي كل شبكة"

// CSVExporter escribe el reporte diario como CSV con encabezados en árabe.
type CSVExporter struct{}

var _ report.Exporter = CSVExporter{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() CSVExporter { return CSVExporter{} }

func (CSVExporter) Extension() string { return "csv" }

// Export filas por venta, una línea en blanco y la fila de totales.
func (CSVExporter) Export(_ context.Context, r *report.DailyReport) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(r.Rows)+3)
	records = append(records, csvHeader)
	for _, row := range r.Rows {
		s := row.Sale
		records = append(records, []string{
			row.EmployeeName,
			strconv.Itoa(s.NetworkNumber),
			s.MastercardAmount.String(),
			s.MadaAmount.String(),
			s.VisaAmount.String(),
			s.GCCAmount.String(),
			s.Total.String(),
		})
	}
	records = append(records, []string{}, []string{
		csvTotalsLabel,
		"",
		r.Totals.Mastercard.String(),
		r.Totals.Mada.String(),
		r.Totals.Visa.String(),
		r.Totals.GCC.String(),
		r.Totals.Grand.String(),
	})
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: escribir reporte: %w", err)
	}
	return buf.Bytes(), nil
}
