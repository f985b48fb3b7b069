package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "gomoku-local/config.json"
	logFile = "gomoku-local/gomoku.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	BlackColorAlt     int `json:"black_alt"`
	WhiteColor        int `json:"white"`
	WhiteColorAlt     int `json:"white_alt"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	Cursor      rune `json:"cursor"`
	LastPlayed  rune `json:"last_played"`
}

type Theme struct {
	DrawStoneBackground      bool          `json:"draw_stone_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	UseGridLines             bool          `json:"use_grid_lines" env:"GOMOKU_GRID_LINES"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// LogConfig controls where and how verbosely the game logs.
// An empty File means the xdg cache location.
type LogConfig struct {
	Level string `json:"level" env:"GOMOKU_LOG_LEVEL"`
	File  string `json:"file" env:"GOMOKU_LOG_FILE"`
}

type Config struct {
	Theme Theme     `json:"theme"`
	Log   LogConfig `json:"log"`

	path string
}

// InitConfig loads the config file from the xdg config directories if one
// exists, applies environment overrides and validates the result.
func InitConfig() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		path = ""
	}
	return loadConfig(path)
}

func loadConfig(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		config.path = path
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	sym := c.Theme.Symbols
	for _, r := range []rune{sym.BlackStone, sym.WhiteStone, sym.BoardSquare, sym.Cursor, sym.LastPlayed} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// Save writes the config back to the file it was loaded from, or to the
// default xdg location.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		path, err = xdg.ConfigFile(cfgFile)
		if err != nil {
			return fmt.Errorf("locate config file: %w", err)
		}
	}
	if err := saveCfgFile(path, c, 0664); err != nil {
		return err
	}
	c.path = path
	return nil
}

// LogPath returns the configured log file, falling back to the xdg cache
// directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(c.Log.File), 0755); err != nil {
			return "", fmt.Errorf("create log dir: %w", err)
		}
		return c.Log.File, nil
	}
	path, err := xdg.CacheFile(logFile)
	if err != nil {
		return "", fmt.Errorf("locate log file: %w", err)
	}
	return path, nil
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
