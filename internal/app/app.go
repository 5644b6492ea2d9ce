package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/bikeshare/internal/config"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/dataset"
	"github.com/specialistvlad/bikeshare/internal/prompt"
	"github.com/specialistvlad/bikeshare/internal/stats"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	prompter  *prompt.Prompter
	cities    *config.Model
	loader    *dataset.Loader
	reporters []stats.Reporter
}

// NewApp builds an App. Answers are read from in, reports are written to
// outW and logs to logW. The city table is read through cfgLoader; with no
// reporters given the core sequence is used.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, cfgLoader config.Loader, reporters ...stats.Reporter) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if cfg.ConfigPath != "" {
		paths = append(paths, cfg.ConfigPath)
	}
	cities, err := cfgLoader.Load(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("City table loaded.", "cities", cities.CityNames())

	if len(reporters) == 0 {
		reporters = coreReporters
	}

	return &App{
		outW:      outW,
		logger:    logger,
		prompter:  prompt.New(in, outW),
		cities:    cities,
		loader:    dataset.NewLoader(cities),
		reporters: reporters,
	}, nil
}

// Cities returns the city table the app runs against.
func (a *App) Cities() *config.Model {
	return a.cities
}
