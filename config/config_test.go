package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `{
  "theme": {"use_grid_lines": false, "colors": {"board": 180, "line": 136}},
  "log": {"level": "debug"}
}`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Theme.UseGridLines)
	assert.Equal(t, 180, cfg.Theme.Colors.BoardColor)
	assert.Equal(t, 136, cfg.Theme.Colors.LineColor)
	// Values missing from the file keep their defaults.
	assert.Equal(t, DefaultTheme.Colors.BlackColor, cfg.Theme.Colors.BlackColor)
	assert.Equal(t, DefaultTheme.Symbols, cfg.Theme.Symbols)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GOMOKU_LOG_LEVEL", "warn")
	t.Setenv("GOMOKU_LOG_FILE", "/tmp/gomoku-test.log")

	path := writeConfig(t, `{"log": {"level": "debug"}}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/gomoku-test.log", cfg.Log.File)

	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, `{"theme": {"symbols": {"black": 7}}}`)
	_, err := loadConfig(path)

	var invalid *InvalidConfig
	require.True(t, errors.As(err, &invalid), "got %v", err)

	path = writeConfig(t, `{"log": {"level": "loud"}}`)
	_, err = loadConfig(path)
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Contains(t, err.Error(), "loud")

	path = writeConfig(t, `{"theme": `)
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestValidateSymbols(t *testing.T) {
	tests := map[string]func(s *ConfigSymbols){
		"black":       func(s *ConfigSymbols) { s.BlackStone = 7 },
		"white":       func(s *ConfigSymbols) { s.WhiteStone = 0x1b },
		"board":       func(s *ConfigSymbols) { s.BoardSquare = 127 },
		"cursor":      func(s *ConfigSymbols) { s.Cursor = '\n' },
		"last played": func(s *ConfigSymbols) { s.LastPlayed = 0x85 },
	}
	for name, mutate := range tests {
		cfg := DefaultConfig
		mutate(&cfg.Theme.Symbols)

		var invalid *InvalidConfig
		assert.True(t, errors.As(cfg.Validate(), &invalid), name)
	}

	cfg := DefaultConfig
	assert.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeConfig(t, `{}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	cfg.Theme.Colors.BoardColor = 229
	require.NoError(t, cfg.Save())

	reloaded, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 229, reloaded.Theme.Colors.BoardColor)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := LogConfig{Level: tt.level}.SlogLevel()
		require.NoError(t, err, tt.level)
		assert.Equal(t, tt.want, got, tt.level)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "row", 3)

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"row":3`)
}

func TestLogPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "gomoku.log")
	cfg := &Config{Log: LogConfig{File: file}}

	got, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, file, got)

	_, err = os.Stat(filepath.Dir(file))
	assert.NoError(t, err)
}
