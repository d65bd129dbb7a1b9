package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/pkg/config"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, config.StoreConfig{Driver: config.DriverSQLite, SQLite: config.SQLiteConfig{Path: ":memory:"}})
	require.NoError(t, err)
	defer st.Close(ctx)

	require.NoError(t, st.Ping(ctx))
	_, err = st.Employees.Create(ctx, &entity.Employee{Name: "n", Username: "u", PasswordHash: "p", Branch: entity.BranchOkaz})
	require.NoError(t, err)
	list, err := st.Employees.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// Mongo no conecta al abrir: basta con tener la URI.
func TestOpen_MongoIsLazy(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, config.StoreConfig{Driver: config.DriverMongo, Mongo: config.MongoConfig{URI: "mongodb://127.0.0.1:1", Database: "pos_db"}})
	require.NoError(t, err)
	assert.NotNil(t, st.Sales)
	assert.NoError(t, st.Close(ctx))
}

func TestOpen_MissingConnectionString(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: config.DriverMongo})
	assert.Error(t, err)
}
