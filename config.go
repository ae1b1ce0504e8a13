package main

import (
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"maplist-generator/internal/maplist"
)

// config holds the tuning knobs read from the environment.
type config struct {
	// MaxIterations caps visited search nodes per match. 0 disables the cap.
	MaxIterations int `env:"MAPLIST_MAX_ITERATIONS" envDefault:"1000000"`
	// Workers bounds matches generated in parallel. 0 means GOMAXPROCS.
	Workers int `env:"MAPLIST_WORKERS" envDefault:"0"`
	// LogLevel is a zerolog level name.
	LogLevel string `env:"MAPLIST_LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (config, error) {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, eris.Wrap(err, "failed to parse environment")
	}
	if cfg.MaxIterations < 0 {
		return config{}, eris.Errorf("MAPLIST_MAX_ITERATIONS must not be negative, got %d", cfg.MaxIterations)
	}
	if cfg.Workers < 0 {
		return config{}, eris.Errorf("MAPLIST_WORKERS must not be negative, got %d", cfg.Workers)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return config{}, eris.Wrapf(err, "invalid MAPLIST_LOG_LEVEL %q", cfg.LogLevel)
	}
	return cfg, nil
}

// level returns the configured log level; verbose forces debug.
func (c config) level(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// options turns the config into generation options.
func (c config) options(log zerolog.Logger) []maplist.Option {
	return []maplist.Option{
		maplist.WithLogger(log),
		maplist.WithMaxIterations(c.MaxIterations),
		maplist.WithWorkers(c.Workers),
	}
}

// newConsoleLogger writes human readable logs, used by the CLI.
func newConsoleLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
