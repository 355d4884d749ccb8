package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"svw.info/sudokupad/internal/adapters/tui"
	"svw.info/sudokupad/internal/config"
	"svw.info/sudokupad/internal/domain"
	"svw.info/sudokupad/internal/fixture"
	"svw.info/sudokupad/internal/store"
	"svw.info/sudokupad/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sudokupad:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "config file (default $SUDOKUPAD_CONFIG or ~/.config/sudokupad/config.toml)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	seedPath := flag.String("fixture", "", "YAML seed to start from (overrides config)")
	demo := flag.Bool("demo", false, "start from the demo position")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *levelStr != "" {
		cfg.Log.Level = *levelStr
	}
	if *seedPath != "" {
		cfg.Fixture.Path = *seedPath
	}
	if *demo {
		cfg.Fixture.Demo = true
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	s := store.New(
		store.WithLogger(logger),
		store.WithStrictValues(cfg.Store.StrictValues),
	)
	cancel := s.Subscribe(func(snap domain.Snapshot) {
		sel := snap.Selected
		attrs := []any{"version", snap.Version, "selected", sel, "mode", domain.ModeOf(snap.Editing)}
		if domain.InRange(sel) {
			attrs = append(attrs, "value", snap.Board[sel], "options", snap.Options[sel])
		}
		logger.Debug("state", attrs...)
	})
	defer cancel()

	seed, err := loadSeed(cfg.Fixture)
	if err != nil {
		return err
	}
	seed.Apply(s)

	m, err := tui.New(usecase.NewService(s), tui.Options{ShowOptions: cfg.UI.ShowOptions, Logger: logger})
	if err != nil {
		return err
	}
	logger.Info("starting", "store", s.ID(), "strict", cfg.Store.StrictValues, "fixture", cfg.Fixture.Path, "demo", cfg.Fixture.Demo)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func loadSeed(c config.FixtureConfig) (fixture.Seed, error) {
	switch {
	case c.Path != "":
		return fixture.LoadFile(c.Path)
	case c.Demo:
		return fixture.Demo(), nil
	}
	return fixture.Seed{}, nil
}

// newLogger writes to the configured file. Without one it discards below
// warn, since stderr is shared with the alt screen.
func newLogger(c config.LogConfig) (*slog.Logger, func(), error) {
	lvl, err := config.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	} else if lvl < slog.LevelWarn {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}
