package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokupad/internal/config"
	"svw.info/sudokupad/internal/fixture"
)

func TestLoadSeed(t *testing.T) {
	seed, err := loadSeed(config.FixtureConfig{})
	require.NoError(t, err)
	require.Equal(t, fixture.Seed{}, seed)

	seed, err = loadSeed(config.FixtureConfig{Demo: true})
	require.NoError(t, err)
	require.Equal(t, fixture.Demo(), seed)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [{index: 0, value: 1}]\n"), 0o644))
	seed, err = loadSeed(config.FixtureConfig{Path: path, Demo: true})
	require.NoError(t, err)
	require.Equal(t, []fixture.CellValue{{Index: 0, Value: 1}}, seed.Board)
}

func TestNewLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sudokupad.log")
	logger, closeLog, err := newLogger(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=hello")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}
