package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/jhoicas/netsales-api/internal/application/report"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

// writeReportTable imprime el reporte; withNames agrega la columna del empleado.
func writeReportTable(w io.Writer, rep *report.DailyReport, withNames bool) error {
	fmt.Fprintf(w, "reporte %s\n", rep.Date)
	if rep.Empty() {
		_, err := fmt.Fprintln(w, "no hay ventas registradas para este día")
		return err
	}
	tw := newTable(w)
	if withNames {
		fmt.Fprint(tw, "EMPLEADO\t")
	}
	fmt.Fprintln(tw, "RED\tMASTERCARD\tMADA\tVISA\tGCC\tTOTAL\t")
	for _, row := range rep.Rows {
		s := row.Sale
		if withNames {
			fmt.Fprintf(tw, "%s\t", row.EmployeeName)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			strconv.Itoa(s.NetworkNumber),
			report.FormatNumber(s.MastercardAmount),
			report.FormatNumber(s.MadaAmount),
			report.FormatNumber(s.VisaAmount),
			report.FormatNumber(s.GCCAmount),
			report.FormatNumber(s.Total),
		)
	}
	t := rep.Totals
	if withNames {
		fmt.Fprint(tw, "\t")
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t%s\t%s\t%s\t%s\t\n",
		report.FormatNumber(t.Mastercard),
		report.FormatNumber(t.Mada),
		report.FormatNumber(t.Visa),
		report.FormatNumber(t.GCC),
		report.FormatNumber(t.Grand),
	)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total general: %s\n", report.FormatSAR(t.Grand))
	return err
}

func writeEmployeeTable(w io.Writer, employees []entity.Employee) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tUSUARIO\tSUCURSAL")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Username, e.Branch)
	}
	return tw.Flush()
}
