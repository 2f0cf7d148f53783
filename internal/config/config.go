// Package config loads settings from a dotenv file and the process environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gigdelivery/internal/core/domain/model/reference"
	"gigdelivery/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment keys.
const (
	LocationTypesKey = "LOCATION_TYPES"
	LogLevelKey      = "LOG_LEVEL"
	LogFormatKey     = "LOG_FORMAT"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config holds every setting the domain needs at start-up.
type Config struct {
	// LocationTypeNames is the allowed set of location types, in display order.
	LocationTypeNames []string `validate:"required,min=1,dive,required"`
	LogLevel          string   `validate:"required,oneof=debug info warn error"`
	LogFormat         string   `validate:"required,oneof=text json"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LocationTypeNames: reference.DefaultLocationTypeNames(),
		LogLevel:          defaultLogLevel,
		LogFormat:         defaultLogFormat,
	}
}

// Load reads the dotenv file at path and overlays the process environment on it;
// a non-empty environment variable wins over the file. An empty path skips the file,
// a path that cannot be read is an error.
//
// LOCATION_TYPES is a comma separated list. LOG_LEVEL and LOG_FORMAT are case-insensitive.
// Unset keys keep their Default values.
func Load(path string) (Config, error) {
	fileValues := map[string]string{}
	if path != "" {
		values, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		fileValues = values
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fileValues[key]
	}

	cfg := Default()
	if v := lookup(LocationTypesKey); v != "" {
		cfg.LocationTypeNames = splitList(v)
	}
	if v := lookup(LogLevelKey); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := lookup(LogFormatKey); v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags. Failures match errs.ErrValueIsInvalid.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("config", err)
	}
	return nil
}

// LocationTypes builds the reference set from LocationTypeNames.
func (c Config) LocationTypes() (reference.LocationTypes, error) {
	return reference.NewLocationTypes(c.LocationTypeNames...)
}

// NewLogger builds a logger writing to w at the configured level and format.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c Config) level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// splitList keeps blank entries so validation can reject them.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
