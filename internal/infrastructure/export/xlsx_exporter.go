package export

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/netsales-api/internal/application/report"
)

const xlsxSheet = "Report"

// XLSXExporter escribe el reporte diario como libro de Excel de una hoja.
type XLSXExporter struct{}

var _ report.Exporter = XLSXExporter{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() XLSXExporter { return XLSXExporter{} }

func (XLSXExporter) Extension() string { return "xlsx" }

func (XLSXExporter) Export(_ context.Context, r *report.DailyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}
	if err := f.SetSheetView(xlsxSheet, 0, &excelize.ViewOptions{RightToLeft: boolPtr(true)}); err != nil {
		return nil, fmt.Errorf("xlsx: vista: %w", err)
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	rows := [][]any{header}
	for _, row := range r.Rows {
		s := row.Sale
		rows = append(rows, []any{
			row.EmployeeName, s.NetworkNumber,
			num(s.MastercardAmount), num(s.MadaAmount), num(s.VisaAmount), num(s.GCCAmount), num(s.Total),
		})
	}
	rows = append(rows, nil, []any{
		csvTotalsLabel, nil,
		num(r.Totals.Mastercard), num(r.Totals.Mada), num(r.Totals.Visa), num(r.Totals.GCC), num(r.Totals.Grand),
	})

	for i, values := range rows {
		if values == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func boolPtr(b bool) *bool { return &b }
