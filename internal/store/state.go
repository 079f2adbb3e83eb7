package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yuchen/hanzideck/internal/progress"
)

// StateRepo loads and saves the single persisted progress bundle.
type StateRepo interface {
	// Load restores the bundle. A missing or unreadable record yields a
	// fresh ledger, never an error the caller must handle to start up.
	Load(ctx context.Context) (*progress.Ledger, error)

	// Save replaces the entire stored bundle.
	Save(ctx context.Context, l *progress.Ledger) error
}

type stateRepo struct {
	db *sqlx.DB
}

func (r *stateRepo) Load(ctx context.Context) (*progress.Ledger, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, `SELECT payload FROM app_state WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.NewLedger(), nil
	}
	if err != nil {
		// Unreadable state is treated as "no saved state"; the caller
		// logs and starts fresh.
		return progress.NewLedger(), fmt.Errorf("load state: %w", err)
	}
	return progress.Decode([]byte(payload)), nil
}

func (r *stateRepo) Save(ctx context.Context, l *progress.Ledger) error {
	payload, err := progress.Encode(l)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (id, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
