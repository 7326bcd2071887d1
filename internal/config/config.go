// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateKeypad creates a keypad with the keys of the options held down
func CreateKeypad(opts options.Program) (*chip8.Keys, error) {
	keys := &chip8.Keys{}
	for _, key := range opts.HeldKeys {
		if err := keys.Press(key); err != nil {
			return nil, fmt.Errorf("pressing key: %w", err)
		}
	}
	return keys, nil
}

// CreateDependencies creates the machine collaborators from the options
func CreateDependencies(opts options.Program) (chip8.Dependencies, error) {
	keys, err := CreateKeypad(opts)
	if err != nil {
		return chip8.Dependencies{}, err
	}

	return chip8.Dependencies{
		Keypad: keys,
		Random: chip8.NewRandom(opts.Seed),
	}, nil
}
