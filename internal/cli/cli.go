// Package cli es la capa de vistas del cliente: cada ejecución carga ambas
// colecciones, autentica y actúa a través de los proveedores de sesión.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/netsales-api/internal/application/report"
	"github.com/jhoicas/netsales-api/internal/client/session"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

var (
	// ErrUsage argumentos o subcomando inválidos.
	ErrUsage = errors.New("usage")
	// ErrForbidden clave de administrador incorrecta.
	ErrForbidden = errors.New("clave de administrador incorrecta")
	// ErrNotOwner la venta pertenece a otro empleado.
	ErrNotOwner = errors.New("la venta pertenece a otro empleado")
	// ErrUnknownID el id no está en la colección cargada.
	ErrUnknownID = errors.New("id no encontrado")
)

// Runner ejecuta un comando contra una sesión.
type Runner struct {
	session   *session.Session
	out       io.Writer
	exporters map[string]report.Exporter
	now       func() time.Time
}

// New crea el runner; exporters se indexan por su extensión.
func New(s *session.Session, out io.Writer, exporters ...report.Exporter) *Runner {
	r := &Runner{session: s, out: out, exporters: map[string]report.Exporter{}, now: time.Now}
	for _, e := range exporters {
		r.exporters[e.Extension()] = e
	}
	return r
}

// Execute netsales <admin|employee> [...].
func (r *Runner) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usageError()
	}
	switch args[0] {
	case "admin":
		return r.runAdmin(ctx, args[1:])
	case "employee":
		return r.runEmployee(ctx, args[1:])
	default:
		return usageError()
	}
}

func usageError() error {
	return fmt.Errorf("%w: netsales <admin|employee> [...]", ErrUsage)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (r *Runner) today() string {
	return r.now().Format(entity.DateLayout)
}

// visited nombres de flags pasados explícitamente.
func visited(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
