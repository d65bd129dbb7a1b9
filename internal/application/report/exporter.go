package report

import (
	"context"
	"fmt"
)

// Exporter serializa un reporte diario a un formato de archivo.
type Exporter interface {
	Export(ctx context.Context, r *DailyReport) ([]byte, error)
	Extension() string
}

// FileName nombre de descarga del reporte: sales-report-<fecha>.<ext>.
func FileName(date, ext string) string {
	return fmt.Sprintf("sales-report-%s.%s", date, ext)
}
