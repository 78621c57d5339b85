// Package config resolves layered run defaults: an optional TOML file and
// SEEDSKETCH_-prefixed environment variables on top of the compiled-in
// values. CLI flags sit above both layers and are applied by the caller,
// giving the precedence flags > environment > file > built-ins.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/seedsketch/seedsketch/pkg/errors"
	"github.com/seedsketch/seedsketch/pkg/sketch"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "seedsketch.toml"

	// envPrefix namespaces environment overrides (SEEDSKETCH_WIDTH, ...).
	envPrefix = "seedsketch"

	// DefaultGalleryAddr is where the gallery server listens.
	DefaultGalleryAddr = "localhost:8383"
)

// Config holds the resolved defaults for render runs and the gallery.
type Config struct {
	Width       int     `toml:"width" envconfig:"WIDTH"`
	Height      int     `toml:"height" envconfig:"HEIGHT"`
	Scale       float64 `toml:"scale" envconfig:"SCALE"`
	Times       int     `toml:"times" envconfig:"TIMES"`
	Name        string  `toml:"name" envconfig:"NAME"`
	FPS         int     `toml:"fps" envconfig:"FPS"`
	OutDir      string  `toml:"out_dir" envconfig:"OUT_DIR"`
	GalleryAddr string  `toml:"gallery_addr" envconfig:"GALLERY_ADDR"`
}

// Builtins returns the compiled-in defaults.
func Builtins() Config {
	return Config{
		Width:       sketch.DefaultWidth,
		Height:      sketch.DefaultHeight,
		Scale:       sketch.DefaultScale,
		Times:       sketch.DefaultTimes,
		Name:        sketch.DefaultName,
		FPS:         sketch.DefaultFPS,
		OutDir:      sketch.DefaultOutDir,
		GalleryAddr: DefaultGalleryAddr,
	}
}

// Load resolves the file and environment layers on top of the built-ins.
// The file is seedsketch.toml in the working directory, else
// config.toml under the user config directory ($XDG_CONFIG_HOME).
// A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Builtins()

	if file := findFile(); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", file)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", file)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "environment overrides")
	}
	return cfg, nil
}

// findFile returns the first config file that exists, or empty.
func findFile() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "seedsketch", "config.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
