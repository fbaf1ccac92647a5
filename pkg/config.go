package pkg

import (
	"errors"
	"fmt"
	"os"

	"github.com/qnkhuat/hotseat/pkg/gui"
)

// Config is read from an optional JSON file. Command line flags override it.
type Config struct {
	White    string         `json:"white"`
	Black    string         `json:"black"`
	Session  string         `json:"session"`
	Theme    string         `json:"theme"`
	Themes   []gui.ThemeHex `json:"themes"`
	LogPath  string         `json:"logPath"`
	LogLevel string         `json:"logLevel"`
	Spectate string         `json:"spectate"`
}

func DefaultConfig() Config {
	return Config{
		White:    "white",
		Black:    "black",
		Theme:    gui.ThemeBasic.Name,
		LogPath:  "./log",
		LogLevel: "info",
	}
}

// LoadConfig overlays the file at path on DefaultConfig. An empty path yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("config: %w", err)
	}
	if err := Decode(data, &config); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	if config.Theme == "" {
		return config, errors.New("config: theme must not be empty")
	}
	return config, nil
}

// ResolveTheme finds the configured theme among the custom and built-in ones
func (c Config) ResolveTheme() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}

func (c Config) Players() [2]Player {
	return NewPlayers(c.White, c.Black)
}
