// Package app is the interactive terminal frontend of the library catalog.
// It wires configuration, logging and the catalog store together and drives
// a small REPL over stdin.
package app

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/repomanager"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/store"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/config"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/logging"
)

type App struct {
	config *config.Config
	store  *store.Store
	db     *sql.DB
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the database named by the configuration, applies pending
// migrations and returns an App ready to Run. Every log line carries a
// per-launch session id.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat).
		With("session", uuid.NewString())

	db, repos, err := repomanager.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "opening database", "dsn", cfg.DatabaseDSN, "error", err)
		return nil, err
	}
	logger.Info(ctx, "database ready", "dsn", cfg.DatabaseDSN)

	return &App{
		config: cfg,
		store:  store.New(db, repos),
		db:     db,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run drives the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	printlnFn("Biblioteca (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}
