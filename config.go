package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/rileylov/dragboard/drag"
	"github.com/rileylov/dragboard/layout"
)

type config struct {
	Layout   string     `env:"DRAGBOARD_LAYOUT"`
	Mode     string     `env:"DRAGBOARD_MODE"`
	LogFile  string     `env:"DRAGBOARD_LOG_FILE"`
	LogLevel slog.Level `env:"DRAGBOARD_LOG_LEVEL" envDefault:"info"`
	Mouse    bool       `env:"DRAGBOARD_MOUSE" envDefault:"true"`
}

// parseEnv loads configuration from environment variables.
func parseEnv(cfg *config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(fs *pflag.FlagSet, cfg *config) error {
	var err error
	if fs.Changed("layout") {
		cfg.Layout, err = fs.GetString("layout")
		if err != nil {
			return err
		}
	}
	if fs.Changed("mode") {
		cfg.Mode, err = fs.GetString("mode")
		if err != nil {
			return err
		}
	}
	if fs.Changed("log-file") {
		cfg.LogFile, err = fs.GetString("log-file")
		if err != nil {
			return err
		}
	}
	if fs.Changed("log-level") {
		level, err := fs.GetString("log-level")
		if err != nil {
			return err
		}
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
	}
	if fs.Changed("no-mouse") {
		noMouse, err := fs.GetBool("no-mouse")
		if err != nil {
			return err
		}
		cfg.Mouse = !noMouse
	}
	return nil
}

func (c config) validate() error {
	if c.Mode == "" {
		return nil
	}
	if _, err := drag.ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

func (c config) loadLayout() (*layout.Layout, error) {
	if c.Layout == "" {
		return layout.Default(), nil
	}
	return layout.Load(c.Layout)
}
