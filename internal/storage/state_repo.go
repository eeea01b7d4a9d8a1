package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DocumentKey is the fixed id of the single aggregate document.
const DocumentKey = "dashboard"

// StateRepo reads and writes the raw aggregate document. Writes are
// whole-document replaces: last write wins, no version token.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load fetches the document by the fixed key. A missing row is not an
// error; ok reports whether one existed.
func (r *StateRepo) Load(ctx context.Context) (data []byte, updatedAt time.Time, ok bool, err error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT data, updated_at FROM app_state WHERE user_id = ?`, DocumentKey)

	var raw string
	var stamp string
	if err := row.Scan(&raw, &stamp); err != nil {
		if err == sql.ErrNoRows {
			return nil, time.Time{}, false, nil
		}
		return nil, time.Time{}, false, fmt.Errorf("state load: %w", err)
	}

	at, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		// A bad stamp should not make the document unreadable.
		at = time.Time{}
	}
	return []byte(raw), at, true, nil
}

// Upsert replaces the document under the fixed key.
func (r *StateRepo) Upsert(ctx context.Context, data []byte, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_state (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, DocumentKey, string(data), updatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("state upsert: %w", err)
	}
	return nil
}
