// Package config reads the YAML configuration of the pathfinder binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/search"
)

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen" validate:"required,hostname_port"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
		Source bool   `yaml:"source"`
	} `yaml:"log"`
	Search struct {
		DefaultStrategy string `yaml:"default_strategy" validate:"required"`
		MaxExpansions   int    `yaml:"max_expansions" validate:"gte=0"`
	} `yaml:"search"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Server.Listen = "localhost:6060"
	c.Log.Level = "info"
	c.Search.DefaultStrategy = search.AStar.String()
	return c
}

// Read loads path over Default and validates the result.
func Read(path string) (Config, error) {
	slog.Info("reading config file", "path", path)
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate checks field constraints and that the default strategy is known.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Strategy parses Search.DefaultStrategy.
func (c Config) Strategy() (search.Strategy, error) {
	return search.ParseStrategy(c.Search.DefaultStrategy)
}
