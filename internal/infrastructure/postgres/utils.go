package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/netsales-api/internal/domain"
)

const (
	// invalid_text_representation: p. ej. un uuid mal formado.
	invalidTextRepresentation = "22P02"
	numericValueOutOfRange    = "22003"
)

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return nil
}

// translateError mapea errores de pgx a errores de dominio.
func translateError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidID, pgErr.Message)
		case numericValueOutOfRange:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
