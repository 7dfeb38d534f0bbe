package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/termvault/internal/client/config"
	"github.com/dmitrijs2005/termvault/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/termvault/internal/client/services"
	"github.com/dmitrijs2005/termvault/internal/client/terminal"
	"github.com/dmitrijs2005/termvault/internal/cryptox"
	"github.com/dmitrijs2005/termvault/internal/logging"
)

// enableRawMode is a test seam for terminal.EnableRawMode.
var enableRawMode = terminal.EnableRawMode

// exitOnSignal is a test seam for the process exit done after a
// terminating signal has restored the terminal.
var exitOnSignal = func() { os.Exit(1) }

type App struct {
	config *config.Config
	auth   services.AuthService
	log    logging.Logger
	in     *os.File
	out    io.Writer
}

// NewApp wires the credential store, the hasher and the auth service from c.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	hasher, err := cryptox.NewBcryptHasher(c.BcryptCost)
	if err != nil {
		return nil, err
	}
	repo := credentials.NewTOMLRepository(c.StorePath)
	auth := services.NewAuthService(repo, hasher, log)

	return &App{config: c, auth: auth, log: log, in: os.Stdin, out: os.Stdout}, nil
}

// Run holds raw mode for the whole session and runs the menu until the user
// exits. The terminal is restored exactly once on every return path, and the
// screen is cleared on a graceful exit.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "session started", "store", a.config.StorePath)

	raw, err := enableRawMode(int(a.in.Fd()))
	switch {
	case errors.Is(err, terminal.ErrNotTerminal):
		a.log.Warn(ctx, "stdin is not a terminal, running without raw mode")
	case err != nil:
		return err
	}
	defer func() {
		if err := raw.Restore(); err != nil {
			a.log.Error(ctx, "restore terminal", "error", err)
		}
	}()

	stop := a.restoreOnSignal(ctx, raw)
	defer stop()

	term := terminal.New(a.in, a.out)
	if err := NewMenu(term, a.auth, a.log).Run(ctx); err != nil {
		return fmt.Errorf("session aborted: %w", err)
	}

	if err := raw.Restore(); err != nil {
		return err
	}
	a.log.Info(ctx, "session finished")
	return term.Clear()
}

// restoreOnSignal puts the terminal back and exits when the process is asked
// to stop, since a pending read cannot be interrupted.
func (a *App) restoreOnSignal(ctx context.Context, raw *terminal.RawMode) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigs:
			a.log.Warn(ctx, "terminated by signal", "signal", sig.String())
			_ = raw.Restore()
			exitOnSignal()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
