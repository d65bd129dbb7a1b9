package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORE_DRIVER", "MONGODB_URI", "DB_NAME", "ADMIN_PASSWORD", "HTTP_PORT", "API_BASE_URL"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)

	// Viper trata una variable vacía como no definida.
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "pos_db", cfg.Store.Mongo.Database)
	assert.Equal(t, "2525", cfg.Admin.Password)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Client.APIBaseURL)
	assert.Error(t, cfg.Store.Validate(), "mongo sin MONGODB_URI es fatal")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/pos?sslmode=disable")
	t.Setenv("ADMIN_PASSWORD", "9999")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_BASE_URL", "http://api.local/")
	t.Setenv("API_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/pos?sslmode=disable", cfg.Store.Postgres.ConnectionString())
	assert.Equal(t, "9999", cfg.Admin.Password)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://api.local", cfg.Client.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	require.NoError(t, cfg.Store.Validate())
}

func TestStoreConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StoreConfig
		wantErr bool
	}{
		{"mongo sin uri", StoreConfig{Driver: DriverMongo}, true},
		{"mongo con uri", StoreConfig{Driver: DriverMongo, Mongo: MongoConfig{URI: "mongodb://localhost"}}, false},
		{"postgres sin dsn", StoreConfig{Driver: DriverPostgres}, true},
		{"postgres por host", StoreConfig{Driver: DriverPostgres, Postgres: DBConfig{Host: "db"}}, false},
		{"sqlite sin ruta", StoreConfig{Driver: DriverSQLite}, true},
		{"memory", StoreConfig{Driver: DriverMemory}, false},
		{"desconocido", StoreConfig{Driver: "redis"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss word", DBName: "pos_db", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss%20word@db:5432/pos_db?sslmode=disable", c.DSN())
}
