package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AnswerRecord is one evaluated answer in the append-only log.
type AnswerRecord struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	Level     string    `db:"level"`
	Mode      string    `db:"mode"`
	CardKey   string    `db:"card_key"`
	Given     string    `db:"given"`
	Correct   bool      `db:"correct"`
	ElapsedMs int       `db:"elapsed_ms"`
	CreatedAt time.Time `db:"created_at"`
}

// LevelModeSummary aggregates the answer log per level and mode.
type LevelModeSummary struct {
	Level   string `db:"level"`
	Mode    string `db:"mode"`
	Correct int    `db:"correct"`
	Total   int    `db:"total"`
}

// AnswerLog appends and queries answer events.
type AnswerLog interface {
	Append(ctx context.Context, rec AnswerRecord) error
	Recent(ctx context.Context, limit int) ([]AnswerRecord, error)
	Summaries(ctx context.Context) ([]LevelModeSummary, error)
}

type answerLog struct {
	db *sqlx.DB
}

func (r *answerLog) Append(ctx context.Context, rec AnswerRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO answers (id, session_id, level, mode, card_key, given, correct, elapsed_ms, created_at)
		VALUES (:id, :session_id, :level, :mode, :card_key, :given, :correct, :elapsed_ms, :created_at)`,
		rec,
	)
	if err != nil {
		return fmt.Errorf("append answer: %w", err)
	}
	return nil
}

func (r *answerLog) Recent(ctx context.Context, limit int) ([]AnswerRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []AnswerRecord
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM answers ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}
	return recs, nil
}

func (r *answerLog) Summaries(ctx context.Context) ([]LevelModeSummary, error) {
	var sums []LevelModeSummary
	err := r.db.SelectContext(ctx, &sums, `
		SELECT level, mode,
		       SUM(CASE WHEN correct THEN 1 ELSE 0 END) AS correct,
		       COUNT(*) AS total
		FROM answers
		GROUP BY level, mode
		ORDER BY level, mode`)
	if err != nil {
		return nil, fmt.Errorf("query answer summaries: %w", err)
	}
	return sums, nil
}
