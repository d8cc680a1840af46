package postgres

import (
	"errors"
	"fmt"

	"items-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapError translates pgx errors into storage errors, keeping the cause in
// the chain for logging.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s (SQLSTATE %s)", storage.ErrUnavailable, pgErr.Message, pgErr.Code)
	}
	return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
}
