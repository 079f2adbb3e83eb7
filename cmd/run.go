package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/app"
	"github.com/yuchen/hanzideck/internal/config"
	"github.com/yuchen/hanzideck/internal/logger"
	"github.com/yuchen/hanzideck/internal/progress"
	"github.com/yuchen/hanzideck/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "hanzideck.log")
	}
	log := logger.New(logPath)
	defer log.Sync()

	states := st.StateRepo()
	ledger, err := states.Load(cmd.Context())
	if err != nil {
		// A fresh ledger is returned alongside the error; keep going.
		log.Warnw("restore progress", "error", err)
	}

	return app.Run(app.Options{
		Ledger:      ledger,
		States:      states,
		Answers:     st.AnswerLog(),
		Log:         log,
		DefaultMode: answer.Mode(cfg.DefaultMode),
	})
}

// openStore resolves paths and opens the database for the non-TUI
// subcommands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadLedger is a convenience wrapper for subcommands that mutate the
// progress bundle.
func loadLedger(ctx context.Context, st *store.Store) (store.StateRepo, *progress.Ledger, error) {
	repo := st.StateRepo()
	l, err := repo.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load progress: %w", err)
	}
	return repo, l, nil
}
