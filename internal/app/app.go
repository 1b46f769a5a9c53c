package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-shell/internal/backend"
	"github.com/atomicstack/popup-shell/internal/core"
	"github.com/atomicstack/popup-shell/internal/env"
	"github.com/atomicstack/popup-shell/internal/shell/term"
	"github.com/atomicstack/popup-shell/internal/theme"
	"github.com/atomicstack/popup-shell/internal/ui"
)

const watchInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Title           string
	EnvFile         string
	Watch           []string
	Chooser         string
	BlockedKey      string
	SystemClipboard bool
}

// Run loads the environment, opens the first window on the terminal shell
// and blocks until the last window is gone.
func Run(cfg Config) error {
	e, err := env.Load(cfg.EnvFile)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	styles := theme.FromEnv(e)
	sh := term.New(term.Options{
		Chooser:         cfg.Chooser,
		SystemClipboard: cfg.SystemClipboard,
		Styles:          styles,
	})
	launcher := build(cfg, e, styles)
	if err := launcher.Launch(sh, ui.Model{}); err != nil {
		return fmt.Errorf("launch: %w", err)
	}

	if len(cfg.Watch) > 0 {
		watcher, err := backend.NewWatcher(launcher.Sink(), watchInterval, cfg.Watch...)
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}

	err = sh.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func build(cfg Config, e *env.Env, styles *theme.Styles) *core.Launcher[ui.Model] {
	title := cfg.Title
	if title == "" {
		title = "popup-shell"
	}
	return core.NewLauncher(ui.NewWindow(styles, title)).
		WithDelegate(&ui.Delegate{Blocked: cfg.BlockedKey}).
		WithEnv(e)
}
