// Command linerating computes steady-state conductor ratings under CIGRE TB
// 601 and IEEE 738.
//
// Usage:
//
//	linerating rate -ambient 40 -wind 0.61 -angle 60 -solar 1210 -conductor-temperature 100 -elevation 0
//	linerating batch -input points.yaml -standard ieee
//	linerating compare -ambient 20 -wind 1.66 -angle 90
//	linerating conductors
//	linerating describe -conductor drake-example-b
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tommz9/linerating/internal/conductor"
	"github.com/tommz9/linerating/internal/rating"
)

type command func(config *Config, out io.Writer, logger zerolog.Logger) error

var commands = map[string]command{
	"rate":       runRate,
	"batch":      runBatch,
	"compare":    runCompare,
	"conductors": runConductors,
	"describe":   runDescribe,
}

const usage = `usage: linerating <rate|batch|compare|conductors|describe> [flags]`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	bootstrap := newLogger("console", zerolog.InfoLevel, stderr)

	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n%s\n", name, usage)
		return 2
	}

	config, err := parseConfig(name, args[1:], bootstrap)
	if err != nil {
		bootstrap.Error().Err(err).Msg("invalid configuration")
		return 1
	}

	logger := newLogger(config.LogFormat, config.LogLevel, stderr).
		With().
		Str("run_id", uuid.NewString()).
		Str("command", name).
		Logger()
	conductor.SetLogger(logger)
	rating.SetLogger(logger)

	if err := cmd(config, stdout, logger); err != nil {
		logger.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
