// netsales es la CLI de administración y registro de ventas contra la API.
//
// Uso:
//
//	netsales admin report --password P [--date D] [--format table|csv|xlsx|pdf] [--out F]
//	netsales admin employees list|add|update|delete --password P [...]
//	netsales admin sales delete --password P --id ID
//	netsales employee --username U --password P sales add|update|delete|report [...]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/netsales-api/internal/cli"
	"github.com/jhoicas/netsales-api/internal/client/api"
	"github.com/jhoicas/netsales-api/internal/client/session"
	"github.com/jhoicas/netsales-api/internal/infrastructure/export"
	"github.com/jhoicas/netsales-api/internal/infrastructure/pdf"
	"github.com/jhoicas/netsales-api/pkg/config"
	"github.com/jhoicas/netsales-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr}).Component("cli")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := api.New(cfg.Client.APIBaseURL, cfg.Client.Timeout)
	runner := cli.New(
		session.New(client, cfg.Admin.Password),
		os.Stdout,
		export.NewCSVExporter(),
		export.NewXLSXExporter(),
		pdf.NewMarotoReportGenerator(),
	)

	if err := runner.Execute(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Error().Err(err).Str("api", cfg.Client.APIBaseURL).Msg("comando fallido")
		os.Exit(1)
	}
}
