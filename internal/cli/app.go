// Package cli wires configuration, the store and the services into the
// cobra command trees of the checklist and recipes binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/homelists/internal/config"
	"github.com/idilsaglam/homelists/internal/store"
	"github.com/idilsaglam/homelists/internal/store/jsonstore"
	"github.com/idilsaglam/homelists/internal/store/memstore"
	"github.com/idilsaglam/homelists/internal/store/sqlitestore"
	"github.com/idilsaglam/homelists/internal/ui"
)

// Version is reported by the version subcommand of both binaries.
const Version = "0.1.0"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// EnvDebug names the variable that turns on the debug log file.
const EnvDebug = "HOMELISTS_DEBUG"

// app is the state shared by one command tree: flag values and the open
// store. Commands build their service from it in PersistentPreRunE.
type app struct {
	configDir string
	dataDir   string
	backend   string

	cfg   config.Config
	store store.Store

	// openStore is swapped in tests.
	openStore func(config.Config) (store.Store, error)
}

func newApp() *app {
	return &app{openStore: openStore}
}

func (a *app) bindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/homelists)")
	f.StringVar(&a.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/homelists)")
	f.StringVar(&a.backend, "backend", "", "store backend: json, sqlite or memory (overrides config)")
	cmd.SetFlagErrorFunc(flagError)
}

// attach loads configuration and opens the store.
func (a *app) attach(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}
	dir, err := config.ResolveConfigDir(a.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := config.Load(dir, a.dataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}
	ui.SetTheme(cfg.Theme)

	s, err := a.openStore(cfg)
	if err != nil {
		if a.backend != "" && errors.Is(err, config.ErrUnknownBackend) {
			return usageError{err: fmt.Errorf("--backend: %w", err)}
		}
		return err
	}
	a.cfg = cfg
	a.store = s
	log.Printf("cli: %s backend at %s", cfg.Backend, cfg.DataDir)
	return nil
}

// detach closes the store. It is safe to call more than once.
func (a *app) detach(*cobra.Command, []string) error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		s, err := jsonstore.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open json store: %w", err)
		}
		return s, nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	case config.BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, cfg.Backend)
}

// usageError marks errors that should exit with exitUsage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

// flagError is installed with SetFlagErrorFunc on both roots.
func flagError(_ *cobra.Command, err error) error {
	return usageError{err: err}
}

// Execute runs cmd with args and returns the process exit code. Errors are
// printed once, styled, to the command's error stream.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()
	// cobra skips post-run hooks when RunE fails, so the store is closed here.
	if cmd.PersistentPostRunE != nil {
		if cerr := cmd.PersistentPostRunE(cmd, nil); err == nil {
			err = cerr
		}
	}
	if err == nil {
		return exitOK
	}
	ui.Fail(cmd.ErrOrStderr(), err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitError
}

// SetupLogging sends the standard logger to a file when HOMELISTS_DEBUG is
// set and discards it otherwise. The returned func closes the file.
func SetupLogging(name string) (func(), error) {
	path := os.Getenv(EnvDebug)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if path == "1" || path == "true" {
		path = name + "-debug.log"
	}
	f, err := tea.LogToFile(path, name)
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	return func() { f.Close() }, nil
}
