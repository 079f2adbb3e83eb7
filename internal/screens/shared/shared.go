// Package shared carries the services every screen needs: the loaded
// progress ledger, the persistence repos, and the logger.
package shared

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/progress"
	"github.com/yuchen/hanzideck/internal/store"
)

// Deps bundles the long-lived services handed to screens.
type Deps struct {
	Ledger      *progress.Ledger
	States      store.StateRepo
	Answers     store.AnswerLog
	Log         *zap.SugaredLogger
	DefaultMode answer.Mode
}

// SaveLedger persists the ledger. Failures are logged, not surfaced:
// the session keeps working in memory even when the disk is unhappy.
func (d *Deps) SaveLedger() {
	if d.States == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := d.States.Save(ctx, d.Ledger); err != nil {
		d.Log.Warnw("save progress", "error", err)
	}
}

// LogAnswer appends one answer to the history log, best effort.
func (d *Deps) LogAnswer(rec store.AnswerRecord) {
	if d.Answers == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := d.Answers.Append(ctx, rec); err != nil {
		d.Log.Warnw("log answer", "error", err)
	}
}
