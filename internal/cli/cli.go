package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/bikeshare/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments with defaults taken from env. It
// returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, env map[string]string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bikeshare - Explore US bike-share trip data interactively.

Usage:
  bikeshare [options]

Pick a city, a month and a day when prompted; the tool then prints travel
time, station and rider statistics and lets you page through the raw trips.

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprintf(output, `
Environment:
  %s, %s, %s, %s
    Defaults for the matching flags. Also read from a %s file.
`, EnvDataDir, EnvConfig, EnvLogLevel, EnvLogFormat, DotEnvFile)
	}

	dataDirFlag := flagSet.String("data-dir", envOr(env, EnvDataDir, "."), "Directory containing the city trip files.")
	configFlag := flagSet.String("config", env[EnvConfig], "Path to an .hcl city table file or directory.")
	logFormatFlag := flagSet.String("log-format", envOr(env, EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(env, EnvLogLevel, "warn"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	slog.Debug("Arguments parsed successfully.")

	config, err := app.NewConfig(app.Config{
		DataDir:    *dataDirFlag,
		ConfigPath: *configFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func envOr(env map[string]string, key, fallback string) string {
	if v := env[key]; v != "" {
		return v
	}
	return fallback
}
