// Package app wires the editor core, the terminal frontend and the
// configuration layer into a running application.
package app

import (
	"fmt"
	"sync"

	"github.com/modedev/moded/internal/config"
	"github.com/modedev/moded/internal/editor"
	"github.com/modedev/moded/internal/term"
)

// Options configures a new Application.
type Options struct {
	// ConfigPath is the settings file to load and watch. Empty
	// disables configuration loading.
	ConfigPath string
	// Files are opened in order; the last one becomes current.
	Files []string
	// Logger receives application logs. Nil discards them.
	Logger *Logger
}

// Application owns the editor session and the terminal for its
// lifetime.
type Application struct {
	mu      sync.Mutex
	cfg     *config.Config
	ed      *editor.Editor
	screen  *term.Screen
	watcher *config.Watcher
	logger  *Logger
}

// New builds an application from the given options. The terminal is
// not touched until Run.
func New(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	app := &Application{
		cfg:    cfg,
		ed:     editor.New(cfg),
		logger: logger,
	}

	for _, path := range opts.Files {
		if err := app.ed.OpenFile(path); err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, app.reloadConfig)
		if err != nil {
			logger.Warn("config watch disabled: %v", err)
		} else {
			app.watcher = w
		}
	}
	return app, nil
}

// reloadConfig runs on the watcher goroutine.
func (app *Application) reloadConfig(cfg *config.Config) {
	app.mu.Lock()
	*app.cfg = *cfg
	app.mu.Unlock()
	app.logger.Info("config reloaded: tab_width=%d indent_width=%d", cfg.TabWidth, cfg.IndentWidth)
}

// Run takes over the terminal and processes input until the editor
// quits or Ctrl-Q is pressed.
func (app *Application) Run() error {
	screen, err := term.New()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	app.screen = screen
	defer app.shutdown()

	app.logger.Info("session started")
	app.render()

	for {
		in, ok := screen.PollInput()
		if !ok {
			app.render()
			continue
		}
		if in.Ctrl && in.Chars == "q" {
			app.logger.Info("session ended by interrupt")
			return nil
		}

		app.mu.Lock()
		err := app.ed.HandleInput(in)
		quit := app.ed.ShouldQuit()
		app.mu.Unlock()

		if err != nil {
			app.logger.Error("input: %v", err)
		}
		if quit {
			app.logger.Info("session ended")
			return nil
		}
		app.render()
	}
}

func (app *Application) render() {
	app.mu.Lock()
	app.screen.Render(app.ed)
	app.mu.Unlock()
}

func (app *Application) shutdown() {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	app.screen.Close()
}
