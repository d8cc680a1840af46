package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// itemsTable mirrors the payload length rules as CHECK constraints so rows
// written outside the API cannot break them either.
const itemsTable = `
CREATE TABLE IF NOT EXISTS items (
	id          BIGSERIAL PRIMARY KEY,
	name        VARCHAR(30)  NOT NULL CHECK (char_length(name) BETWEEN 4 AND 30),
	description VARCHAR(100) NOT NULL CHECK (char_length(description) BETWEEN 10 AND 100)
);`

// EnsureSchema creates the items table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, itemsTable); err != nil {
		return fmt.Errorf("failed to ensure items table: %w", err)
	}
	return nil
}
