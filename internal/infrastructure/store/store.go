package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/netsales-api/internal/domain/repository"
	"github.com/jhoicas/netsales-api/internal/infrastructure/memory"
	"github.com/jhoicas/netsales-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/netsales-api/internal/infrastructure/postgres"
	"github.com/jhoicas/netsales-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/netsales-api/pkg/config"
)

// Store repositorios del almacén elegido por STORE_DRIVER.
type Store struct {
	Driver    string
	Employees repository.EmployeeRepository
	Sales     repository.SaleRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open construye los repositorios del driver configurado.
// Mongo conecta en el primer uso; Postgres y SQLite conectan aquí.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case config.DriverMongo:
		client, err := mongodb.NewClient(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    cfg.Driver,
			Employees: mongodb.NewEmployeeRepository(client),
			Sales:     mongodb.NewSaleRepository(client),
			ping:      client.Ping,
			close:     client.Close,
		}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    cfg.Driver,
			Employees: postgres.NewEmployeeRepository(pool),
			Sales:     postgres.NewSaleRepository(pool),
			ping:      pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    cfg.Driver,
			Employees: sqlite.NewEmployeeRepository(db),
			Sales:     sqlite.NewSaleRepository(db),
			ping:      db.PingContext,
			close:     func(context.Context) error { return db.Close() },
		}, nil
	case config.DriverMemory:
		return &Store{
			Driver:    cfg.Driver,
			Employees: memory.NewEmployeeRepository(),
			Sales:     memory.NewSaleRepository(),
		}, nil
	}
	return nil, fmt.Errorf("store: driver %q no soportado", cfg.Driver)
}

// Ping comprueba el almacén.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close libera las conexiones.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
