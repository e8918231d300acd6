package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tommz9/linerating/internal/rating"
)

const (
	envStandard  = "LINERATING_STANDARD"
	envLogLevel  = "LINERATING_LOG_LEVEL"
	envConductor = "LINERATING_CONDUCTOR"
	envCatalog   = "LINERATING_CATALOG"
)

// Config holds the settings of one CLI invocation.
type Config struct {
	Command    string
	Standard   rating.Standard
	Conductor  string
	Catalog    string
	Input      string
	LogLevel   zerolog.Level
	LogFormat  string
	Conditions rating.Conditions
}

// parseConfig parses the arguments following the subcommand. Flags that are
// not given explicitly fall back to LINERATING_* environment variables and
// then to the built-in defaults. An unknown standard is a configuration
// error; an unknown log level only logs a warning.
func parseConfig(command string, args []string, logger zerolog.Logger) (*Config, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	defaults := rating.DefaultConditions()
	config := &Config{Command: command, Conditions: defaults}

	standard := fs.String("standard", rating.DefaultStandard.String(), "Rating standard: cigre or ieee")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&config.Conductor, "conductor", "drake", "Conductor name from the catalog")
	fs.StringVar(&config.Catalog, "catalog", "", "Optional YAML conductor catalog replacing the embedded one")
	fs.StringVar(&config.Input, "input", "", "Batch input file (.yaml, .yml or .json)")
	fs.StringVar(&config.LogFormat, "log-format", "console", "Log format: console or json")

	cond := &config.Conditions
	fs.Float64Var(&cond.AmbientTemperature, "ambient", defaults.AmbientTemperature, "Ambient temperature [°C]")
	fs.Float64Var(&cond.WindSpeed, "wind", defaults.WindSpeed, "Wind speed [m/s]")
	fs.Float64Var(&cond.AngleOfAttack, "angle", defaults.AngleOfAttack, "Angle between wind and conductor [°]")
	fs.Float64Var(&cond.SolarIrradiation, "solar", defaults.SolarIrradiation, "Solar irradiation [W/m²]")
	fs.Float64Var(&cond.ConductorTemperature, "conductor-temperature", defaults.ConductorTemperature, "Target conductor temperature [°C]")
	fs.Float64Var(&cond.HorizontalAngle, "horizontal-angle", defaults.HorizontalAngle, "Conductor inclination [°], CIGRE only")
	fs.Float64Var(&cond.Elevation, "elevation", defaults.Elevation, "Elevation above sea level [m]")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["standard"] {
		if v := os.Getenv(envStandard); v != "" {
			*standard = v
		}
	}
	if !set["log-level"] {
		if v := os.Getenv(envLogLevel); v != "" {
			*logLevel = v
		}
	}
	if !set["conductor"] {
		if v := os.Getenv(envConductor); v != "" {
			config.Conductor = v
		}
	}
	if !set["catalog"] {
		if v := os.Getenv(envCatalog); v != "" {
			config.Catalog = v
		}
	}

	s, err := rating.ParseStandard(*standard)
	if err != nil {
		return nil, err
	}
	config.Standard = s

	config.LogLevel = zerolog.InfoLevel
	if level, err := zerolog.ParseLevel(strings.ToLower(*logLevel)); err == nil && level != zerolog.NoLevel {
		config.LogLevel = level
	} else {
		logger.Warn().Str("value", *logLevel).Msg("invalid log level, using info")
	}

	config.LogFormat = strings.ToLower(config.LogFormat)
	if config.LogFormat != "console" && config.LogFormat != "json" {
		logger.Warn().Str("value", config.LogFormat).Msg("invalid log format, using console")
		config.LogFormat = "console"
	}

	if command == "batch" && config.Input == "" {
		return nil, fmt.Errorf("batch requires -input")
	}

	logger.Debug().
		Str("command", command).
		Str("standard", config.Standard.String()).
		Str("conductor", config.Conductor).
		Msg("configuration parsed")

	return config, nil
}

// newLogger builds the stderr logger for the given format and level.
func newLogger(format string, level zerolog.Level, out io.Writer) zerolog.Logger {
	var w io.Writer = out
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
