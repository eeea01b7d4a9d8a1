package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// The store is document-style: one row per fixed key holding the whole
// aggregate as JSON. Consumers merge the document over defaults on
// read, so the schema never needs per-field migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			user_id TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
