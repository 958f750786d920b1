// Package config loads the hangulcd INI configuration. A missing file is
// not an error; every field has a default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

type Config struct {
	Layout  string
	Preedit bool
	// KeyOverrides rebinds single keys on top of the named layout.
	KeyOverrides map[rune]rune
}

const (
	defaultLayout  = "dubeolsik"
	defaultPreedit = true
)

func Load(path string) (Config, error) {
	cfg := Config{Layout: defaultLayout, Preedit: defaultPreedit}

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
	cfg.Preedit = file.Section("output").Key("preedit").MustBool(cfg.Preedit)

	keys := file.Section("keys")
	for _, k := range keys.Keys() {
		key := []rune(k.Name())
		value := []rune(k.Value())
		if len(key) != 1 || len(value) != 1 {
			return cfg, fmt.Errorf("config: key override %q=%q must map one character to one character", k.Name(), k.Value())
		}
		if cfg.KeyOverrides == nil {
			cfg.KeyOverrides = make(map[rune]rune)
		}
		cfg.KeyOverrides[key[0]] = value[0]
	}

	return cfg, nil
}
