package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            username TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            branch TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS sales (
            id TEXT PRIMARY KEY,
            sale_date TEXT NOT NULL,
            network_number INTEGER NOT NULL,
            mastercard_amount TEXT NOT NULL DEFAULT '0',
            mada_amount TEXT NOT NULL DEFAULT '0',
            visa_amount TEXT NOT NULL DEFAULT '0',
            gcc_amount TEXT NOT NULL DEFAULT '0',
            total TEXT NOT NULL DEFAULT '0',
            employee_id TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (sale_date);`,
}

// Open abre la base SQLite en dsn (ruta o ":memory:") y aplica el esquema.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: conectar: %w", err)
	}
	// Una sola conexión: SQLite serializa escrituras y ":memory:" vive por conexión.
	db.SetMaxOpenConns(1)
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: esquema: %w", err)
		}
	}
	return db, nil
}
