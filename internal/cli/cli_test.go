package cli_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netsales-api/internal/application/usecase"
	"github.com/jhoicas/netsales-api/internal/cli"
	"github.com/jhoicas/netsales-api/internal/client/api"
	"github.com/jhoicas/netsales-api/internal/client/session"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/infrastructure/export"
	"github.com/jhoicas/netsales-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/netsales-api/internal/interfaces/http"
)

// ─── Helpers ────────────────────────────────────────────────────────────────

func newClient(t *testing.T) *api.Client {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		EmployeeUC: usecase.NewEmployeeUseCase(memory.NewEmployeeRepository()),
		SaleUC:     usecase.NewSaleUseCase(memory.NewSaleRepository()),
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 5*time.Second)
}

// run ejecuta un comando con una sesión nueva, como hace el binario.
func run(t *testing.T, c *api.Client, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r := cli.New(session.New(c, "2525"), &out, export.NewCSVExporter())
	err := r.Execute(context.Background(), args)
	return out.String(), err
}

func seedEmployee(t *testing.T, c *api.Client, username, password string) entity.Employee {
	t.Helper()
	e, err := c.CreateEmployee(context.Background(), entity.Employee{
		Name: "موظف " + username, Username: username, PasswordHash: password, Branch: entity.BranchTuwaiq,
	})
	require.NoError(t, err)
	return e
}

// ─── Admin ──────────────────────────────────────────────────────────────────

func TestAdmin_WrongPassword(t *testing.T) {
	c := newClient(t)
	_, err := run(t, c, "admin", "report", "--password", "0000")
	assert.ErrorIs(t, err, cli.ErrForbidden)
}

func TestAdmin_EmployeesAddListUpdateDelete(t *testing.T) {
	c := newClient(t)
	out, err := run(t, c, "admin", "employees", "add", "--password", "2525",
		"--name", "همدان", "--username", "101", "--employee-password", "123", "--branch", string(entity.BranchOkaz))
	require.NoError(t, err)
	assert.Contains(t, out, "empleado creado")

	list, err := c.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	_, err = run(t, c, "admin", "employees", "update", "--password", "2525", "--id", id, "--name", "همدان علي")
	require.NoError(t, err)

	out, err = run(t, c, "admin", "employees", "list", "--password", "2525")
	require.NoError(t, err)
	assert.Contains(t, out, "همدان علي")

	list, err = c.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123", list[0].PasswordHash)

	_, err = run(t, c, "admin", "employees", "delete", "--password", "2525", "--id", id)
	require.NoError(t, err)
	list, err = c.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAdmin_ReportCSVToStdout(t *testing.T) {
	c := newClient(t)
	e := seedEmployee(t, c, "ahmed", "123")
	_, err := c.CreateSale(context.Background(), entity.SaleEntry{
		Date: "2024-01-01", NetworkNumber: 2, MadaAmount: decimal.NewFromInt(40), EmployeeID: e.ID,
	})
	require.NoError(t, err)

	out, err := run(t, c, "admin", "report", "--password", "2525", "--date", "2024-01-01", "--format", "csv", "--out", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\ufeff"))
	assert.Contains(t, out, e.Name)

	_, err = run(t, c, "admin", "report", "--password", "2525", "--format", "docx", "--out", "-")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

// ─── Employee ───────────────────────────────────────────────────────────────

func TestEmployee_AddAndReport(t *testing.T) {
	c := newClient(t)
	seedEmployee(t, c, "ahmed", "123")

	out, err := run(t, c, "employee", "--username", "ahmed", "--password", "123",
		"sales", "add", "--date", "2024-01-01", "--network", "3", "--mastercard", "100", "--mada", "50.5", "--visa", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "175.50")

	out, err = run(t, c, "employee", "--username", "ahmed", "--password", "123", "sales", "report", "--date", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "175.50")

	out, err = run(t, c, "employee", "--username", "ahmed", "--password", "123", "sales", "report", "--date", "2024-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, "no hay ventas")
}

func TestEmployee_AddRequiresNetwork(t *testing.T) {
	c := newClient(t)
	seedEmployee(t, c, "ahmed", "123")

	_, err := run(t, c, "employee", "--username", "ahmed", "--password", "123",
		"sales", "add", "--date", "2024-01-01", "--mada", "10")
	assert.ErrorIs(t, err, cli.ErrUsage)

	list, err := c.ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = run(t, c, "employee", "--username", "ahmed", "--password", "123",
		"sales", "add", "--date", "2024-01-01", "--network", "0", "--mada", "10")
	require.NoError(t, err)
}

func TestEmployee_BadCredentials(t *testing.T) {
	c := newClient(t)
	seedEmployee(t, c, "ahmed", "123")
	_, err := run(t, c, "employee", "--username", "ahmed", "--password", "999", "sales", "report")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
}

func TestEmployee_OwnershipCheck(t *testing.T) {
	c := newClient(t)
	owner := seedEmployee(t, c, "ahmed", "123")
	seedEmployee(t, c, "fatima", "456")
	sale, err := c.CreateSale(context.Background(), entity.SaleEntry{Date: "2024-01-01", NetworkNumber: 1, EmployeeID: owner.ID})
	require.NoError(t, err)

	_, err = run(t, c, "employee", "--username", "fatima", "--password", "456", "sales", "delete", "--id", sale.ID)
	assert.ErrorIs(t, err, cli.ErrNotOwner)

	_, err = run(t, c, "employee", "--username", "ahmed", "--password", "123", "sales", "update", "--id", sale.ID, "--gcc", "7")
	require.NoError(t, err)
	list, err := c.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Total.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 1, list[0].NetworkNumber)
}

func TestExecute_Usage(t *testing.T) {
	c := newClient(t)
	_, err := run(t, c)
	assert.ErrorIs(t, err, cli.ErrUsage)
	_, err = run(t, c, "root")
	assert.ErrorIs(t, err, cli.ErrUsage)
}
