package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/jhoicas/netsales-api/internal/application/dto"
	"github.com/jhoicas/netsales-api/internal/application/report"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

func (r *Runner) runEmployee(ctx context.Context, args []string) error {
	fs := newFlagSet("employee")
	username := fs.String("username", "", "usuario")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 || rest[0] != "sales" {
		return fmt.Errorf("%w: netsales employee --username U --password P sales <add|update|delete|report> [...]", ErrUsage)
	}

	if err := r.session.Load(ctx); err != nil {
		return err
	}
	me, err := r.session.Employees.Login(*username, *password)
	if err != nil {
		return err
	}
	defer r.session.Logout()

	switch rest[1] {
	case "add":
		return r.employeeAddSale(ctx, me, rest[2:])
	case "update":
		return r.employeeUpdateSale(ctx, me, rest[2:])
	case "delete":
		return r.employeeDeleteSale(ctx, me, rest[2:])
	case "report":
		return r.employeeReport(me, rest[2:])
	default:
		return fmt.Errorf("%w: acción desconocida %q", ErrUsage, rest[1])
	}
}

type saleFlags struct {
	date, mastercard, mada, visa, gcc *string
	network                           *int
}

func bindSaleFlags(r *Runner, name string) (*flag.FlagSet, saleFlags) {
	fs := newFlagSet(name)
	return fs, saleFlags{
		date:       fs.String("date", r.today(), "día de la venta (YYYY-MM-DD)"),
		network:    fs.Int("network", 0, "número de red"),
		mastercard: fs.String("mastercard", "", "monto Mastercard"),
		mada:       fs.String("mada", "", "monto mada"),
		visa:       fs.String("visa", "", "monto Visa"),
		gcc:        fs.String("gcc", "", "monto GCC"),
	}
}

// apply copia sobre s los flags pasados; con all copia todos.
func (f saleFlags) apply(s *entity.SaleEntry, set map[string]bool, all bool) {
	if all || set["date"] {
		s.Date = *f.date
	}
	if all || set["network"] {
		s.NetworkNumber = *f.network
	}
	if all || set["mastercard"] {
		s.MastercardAmount = dto.ParseAmount(*f.mastercard)
	}
	if all || set["mada"] {
		s.MadaAmount = dto.ParseAmount(*f.mada)
	}
	if all || set["visa"] {
		s.VisaAmount = dto.ParseAmount(*f.visa)
	}
	if all || set["gcc"] {
		s.GCCAmount = dto.ParseAmount(*f.gcc)
	}
}

func (r *Runner) employeeAddSale(ctx context.Context, me entity.Employee, args []string) error {
	fs, f := bindSaleFlags(r, "sales add")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !visited(fs)["network"] {
		return fmt.Errorf("%w: --network es requerido", ErrUsage)
	}
	sale := entity.SaleEntry{EmployeeID: me.ID}
	f.apply(&sale, nil, true)
	created, err := r.session.Sales.Add(ctx, sale)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "venta registrada: %s total %s\n", created.ID, report.FormatSAR(created.Total))
	return nil
}

func (r *Runner) employeeUpdateSale(ctx context.Context, me entity.Employee, args []string) error {
	fs, f := bindSaleFlags(r, "sales update")
	id := fs.String("id", "", "id de la venta")
	if err := fs.Parse(args); err != nil {
		return err
	}
	sale, err := r.ownedSale(me, *id)
	if err != nil {
		return err
	}
	f.apply(&sale, visited(fs), false)
	updated, err := r.session.Sales.Update(ctx, sale)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "venta actualizada: %s total %s\n", updated.ID, report.FormatSAR(updated.Total))
	return nil
}

func (r *Runner) employeeDeleteSale(ctx context.Context, me entity.Employee, args []string) error {
	fs := newFlagSet("sales delete")
	id := fs.String("id", "", "id de la venta")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := r.ownedSale(me, *id); err != nil {
		return err
	}
	if err := r.session.Sales.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "venta eliminada: %s\n", *id)
	return nil
}

func (r *Runner) employeeReport(me entity.Employee, args []string) error {
	fs := newFlagSet("sales report")
	date := fs.String("date", r.today(), "día del reporte (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rep := report.EmployeeDaily(r.session.Sales.State().Sales, me.ID, *date)
	fmt.Fprintf(r.out, "%s (%s)\n", me.Name, me.Branch)
	return writeReportTable(r.out, rep, false)
}

func (r *Runner) ownedSale(me entity.Employee, id string) (entity.SaleEntry, error) {
	sale, ok := r.session.Sales.Find(id)
	if !ok {
		return entity.SaleEntry{}, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	if sale.EmployeeID != me.ID {
		return entity.SaleEntry{}, ErrNotOwner
	}
	return sale, nil
}
