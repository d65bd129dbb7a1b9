package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/netsales-api/internal/application/report"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

func (r *Runner) runAdmin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: netsales admin <report|employees|sales> [...]", ErrUsage)
	}
	switch args[0] {
	case "report":
		return r.adminReport(ctx, args[1:])
	case "employees":
		return r.adminEmployees(ctx, args[1:])
	case "sales":
		return r.adminSales(ctx, args[1:])
	default:
		return fmt.Errorf("%w: subcomando admin desconocido %q", ErrUsage, args[0])
	}
}

// loginAdmin carga colecciones y valida la clave.
func (r *Runner) loginAdmin(ctx context.Context, password string) error {
	if !r.session.Admin.Login(password) {
		return ErrForbidden
	}
	return r.session.Load(ctx)
}

func (r *Runner) adminReport(ctx context.Context, args []string) error {
	fs := newFlagSet("admin report")
	password := fs.String("password", "", "clave de administrador")
	date := fs.String("date", r.today(), "día del reporte (YYYY-MM-DD)")
	format := fs.String("format", "table", "table | csv | xlsx | pdf")
	out := fs.String("out", "", "archivo de salida (por defecto sales-report-<fecha>.<ext>; - para stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := r.loginAdmin(ctx, *password); err != nil {
		return err
	}

	rep := report.Daily(r.session.Sales.State().Sales, *date).
		WithEmployeeNames(r.session.Employees.State().Employees)
	if *format == "table" {
		return writeReportTable(r.out, rep, true)
	}
	return r.export(ctx, rep, *format, *out)
}

func (r *Runner) export(ctx context.Context, rep *report.DailyReport, format, out string) error {
	exp, ok := r.exporters[format]
	if !ok {
		return fmt.Errorf("%w: formato desconocido %q", ErrUsage, format)
	}
	b, err := exp.Export(ctx, rep)
	if err != nil {
		return fmt.Errorf("exportar %s: %w", format, err)
	}
	if out == "-" {
		_, err = r.out.Write(b)
		return err
	}
	if out == "" {
		out = report.FileName(rep.Date, exp.Extension())
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", out, err)
	}
	fmt.Fprintf(r.out, "reporte guardado en %s\n", out)
	return nil
}

func (r *Runner) adminEmployees(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: netsales admin employees <list|add|update|delete> [...]", ErrUsage)
	}
	fs := newFlagSet("admin employees " + args[0])
	password := fs.String("password", "", "clave de administrador")
	id := fs.String("id", "", "id del empleado")
	name := fs.String("name", "", "nombre")
	username := fs.String("username", "", "usuario")
	pass := fs.String("employee-password", "", "contraseña del empleado")
	branch := fs.String("branch", string(entity.Branches[0]), "sucursal")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if err := r.loginAdmin(ctx, *password); err != nil {
		return err
	}

	employees := r.session.Employees
	switch args[0] {
	case "list":
		return writeEmployeeTable(r.out, employees.State().Employees)
	case "add":
		e, err := employees.Add(ctx, entity.Employee{
			Name:         *name,
			Username:     *username,
			PasswordHash: *pass,
			Branch:       entity.Branch(*branch),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "empleado creado: %s\n", e.ID)
		return nil
	case "update":
		e, ok := employees.Find(*id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownID, *id)
		}
		set := visited(fs)
		if set["name"] {
			e.Name = *name
		}
		if set["username"] {
			e.Username = *username
		}
		if set["branch"] {
			e.Branch = entity.Branch(*branch)
		}
		// contraseña vacía: el servidor conserva la guardada
		e.PasswordHash = *pass
		if _, err := employees.Update(ctx, e); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "empleado actualizado: %s\n", e.ID)
		return nil
	case "delete":
		if *id == "" {
			return errors.New("--id es requerido")
		}
		if err := employees.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "empleado eliminado: %s\n", *id)
		return nil
	default:
		return fmt.Errorf("%w: acción desconocida %q", ErrUsage, args[0])
	}
}

// adminSales el administrador solo puede eliminar ventas.
func (r *Runner) adminSales(ctx context.Context, args []string) error {
	if len(args) < 1 || args[0] != "delete" {
		return fmt.Errorf("%w: netsales admin sales delete --id ID", ErrUsage)
	}
	fs := newFlagSet("admin sales delete")
	password := fs.String("password", "", "clave de administrador")
	id := fs.String("id", "", "id de la venta")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if err := r.loginAdmin(ctx, *password); err != nil {
		return err
	}
	if err := r.session.Sales.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "venta eliminada: %s\n", *id)
	return nil
}
