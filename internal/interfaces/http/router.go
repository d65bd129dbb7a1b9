package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jhoicas/netsales-api/internal/application/usecase"
)

// FunctionsPrefix prefijo bajo el que los clientes heredados llaman a la API.
const FunctionsPrefix = "/.netlify/functions"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	SaleUC     *usecase.SaleUseCase
}

// Router registra CORS y los recursos employees-api y sales-api,
// en la raíz y bajo FunctionsPrefix.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(allowAnyOrigin)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	// OPTIONS sin cabeceras de preflight: 204 vacío.
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	employees := NewEmployeeHandler(deps.EmployeeUC)
	sales := NewSaleHandler(deps.SaleUC)

	mount(app, employees, sales)
	mount(app.Group(FunctionsPrefix), employees, sales)
}

func mount(r fiber.Router, employees *EmployeeHandler, sales *SaleHandler) {
	r.Get("/employees-api", employees.List)
	r.Post("/employees-api", employees.Create)
	r.Get("/employees-api/:id", employees.GetByID)
	r.Put("/employees-api/:id", employees.Update)
	r.Delete("/employees-api/:id", employees.Delete)
	r.All("/employees-api", methodNotAllowed)
	r.All("/employees-api/:id", methodNotAllowed)

	r.Get("/sales-api", sales.List)
	r.Post("/sales-api", sales.Create)
	r.Get("/sales-api/:id", sales.GetByID)
	r.Put("/sales-api/:id", sales.Update)
	r.Delete("/sales-api/:id", sales.Delete)
	r.All("/sales-api", methodNotAllowed)
	r.All("/sales-api/:id", methodNotAllowed)
}

// allowAnyOrigin marca toda respuesta con Allow-Origin "*", lleve o no Origin la petición.
func allowAnyOrigin(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.Next()
}
