// Package config loads the hansori INI configuration. A missing file is not
// an error; every field has a usable default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

type Config struct {
	Layout         string
	DefaultMode    string
	ToggleKey      string
	CompoundDouble bool
	Encoding       string
	Normalize      bool
}

const (
	defaultLayout = "dubeolsik"
	defaultMode   = "hangul"
	defaultToggle = "ctrl+space"
)

func Default() Config {
	return Config{
		Layout:      defaultLayout,
		DefaultMode: defaultMode,
		ToggleKey:   defaultToggle,
		Encoding:    "utf-8",
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Layout = file.Section("layout").Key("name").MustString(cfg.Layout)
	cfg.DefaultMode = file.Section("layout").Key("default_mode").MustString(cfg.DefaultMode)
	cfg.ToggleKey = file.Section("toggle").Key("key").MustString(cfg.ToggleKey)
	cfg.CompoundDouble = file.Section("compose").Key("compound_double_chars").MustBool(cfg.CompoundDouble)
	cfg.Encoding = file.Section("output").Key("encoding").MustString(cfg.Encoding)
	cfg.Normalize = file.Section("output").Key("normalize").MustBool(cfg.Normalize)
	return cfg, nil
}

// Resolve loads the explicit path when given, otherwise looks for
// hansori.ini next to the working directory and falls back to defaults.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(cwd, "hansori.ini"))
}
