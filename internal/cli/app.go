// Package cli wires the stores and the command processor together and
// runs the line-reading entry loop.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"bookstore/internal/command"
	"bookstore/internal/config"
	"bookstore/internal/filex"
	"bookstore/internal/logging"
	"bookstore/internal/repositories/accounts"
	"bookstore/internal/repositories/books"
	"bookstore/internal/session"
)

type App struct {
	config *config.Config
	log    logging.Logger
	proc   *command.Processor

	in     io.Reader
	out    io.Writer
	prompt io.Writer // nil when input is not a terminal
}

// NewApp loads both record stores (seeding the root account on first
// run) and builds the processor around them. The interactive prompt is
// enabled only when stdin is a terminal, so piped protocol input gets
// byte-exact replies with no decoration.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}

	accountRepo := accounts.NewFileRepository(cfg.AccountPath(), log)
	if err := accountRepo.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	bookRepo := books.NewFileRepository(cfg.BookPath(), log)
	if err := bookRepo.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}
	stack := session.NewStack(cfg.LoginPath())

	app := &App{
		config: cfg,
		log:    log,
		proc:   command.NewProcessor(accountRepo, bookRepo, stack, log),
		in:     os.Stdin,
		out:    os.Stdout,
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		app.prompt = os.Stderr
	}
	return app, nil
}

// Run drives the entry loop until end of input or a terminating
// command. The process exit status is success in both cases; only a
// read failure on the input stream surfaces as an error.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "accepting commands", "data_dir", a.config.DataDir)
	return runLoop(ctx, a.proc, a.in, a.out, a.prompt)
}
