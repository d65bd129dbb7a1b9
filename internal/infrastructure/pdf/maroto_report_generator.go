// Package pdf genera la versión imprimible del reporte diario de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha del reporte                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Red | MC | Mada | Visa | GCC | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES por esquema + total general                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/netsales-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Helvetica no cubre árabe: las etiquetas van en inglés.
var columns = []struct {
	label string
	size  int
	align align.Type
}{
	{"Employee", 3, align.Left},
	{"Network", 1, align.Center},
	{"Mastercard", 2, align.Right},
	{"Mada", 1, align.Right},
	{"Visa", 1, align.Right},
	{"GCC", 2, align.Right},
	{"Total", 2, align.Right},
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Exporter usando Maroto v2.
type MarotoReportGenerator struct{}

var _ report.Exporter = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func (g *MarotoReportGenerator) Extension() string { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Export(_ context.Context, r *report.DailyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Daily card sales "+r.Date, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if r.Empty() {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No sales recorded for this date.", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, rw := range r.Rows {
		m.AddRows(detailRow(rw))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *report.DailyReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("DAILY CARD SALES REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Date: "+r.Date, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Entries: %d", len(r.Rows)), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2,
		})))
	}
	return row.New(8).Add(cols...)
}

func detailRow(rw report.Row) core.Row {
	s := rw.Sale
	values := []string{
		rw.EmployeeName,
		strconv.Itoa(s.NetworkNumber),
		report.FormatNumber(s.MastercardAmount),
		report.FormatNumber(s.MadaAmount),
		report.FormatNumber(s.VisaAmount),
		report.FormatNumber(s.GCCAmount),
		report.FormatNumber(s.Total),
	}
	return valuesRow(values, fontstyle.Normal)
}

func totalsRow(t report.Totals) core.Row {
	values := []string{
		"TOTAL", "",
		report.FormatNumber(t.Mastercard),
		report.FormatNumber(t.Mada),
		report.FormatNumber(t.Visa),
		report.FormatNumber(t.GCC),
		report.FormatSAR(t.Grand),
	}
	return valuesRow(values, fontstyle.Bold)
}

func valuesRow(values []string, style fontstyle.Type) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(values[i], props.Text{
			Style: style, Size: 8, Align: c.align, Top: 1,
		})))
	}
	return row.New(7).Add(cols...)
}
