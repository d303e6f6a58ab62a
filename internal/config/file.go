// internal/config/file.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the optional TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps game-related settings. Pointers distinguish "unset" from
// zero values so the constants above stay the defaults.
type GameConfig struct {
	Lives        *int    `toml:"lives"`
	Seed         *int64  `toml:"seed"`
	WordListPath *string `toml:"wordlist"`
	Audio        *bool   `toml:"audio"`
	DatabasePath *string `toml:"database"`
}

// LoadFile reads a TOML config from the given path. A missing file is not an
// error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
