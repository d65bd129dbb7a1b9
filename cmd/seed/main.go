// seed carga la nómina inicial en el almacén configurado.
//
// Uso: go run ./cmd/seed [ruta/employees.yaml]
// Por defecto lee assets/seed/employees.yaml. Los usernames existentes se omiten.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/netsales-api/internal/application/usecase"
	"github.com/jhoicas/netsales-api/internal/infrastructure/store"
	"github.com/jhoicas/netsales-api/internal/seed"
	"github.com/jhoicas/netsales-api/pkg/config"
	"github.com/jhoicas/netsales-api/pkg/logger"
)

func main() {
	path := "assets/seed/employees.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("abrir nómina")
	}
	defer f.Close()

	roster, err := seed.ParseRoster(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer nómina")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén")
	}
	defer st.Close(ctx)

	res, err := seed.Apply(ctx, usecase.NewEmployeeUseCase(st.Employees), roster)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar nómina")
	}
	log.Info().
		Strs("created", res.Created).
		Strs("skipped", res.Skipped).
		Msg("nómina cargada")
}
