package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/bikeshare/internal/app"
	"github.com/specialistvlad/bikeshare/internal/cli"
	"github.com/specialistvlad/bikeshare/internal/hcl"
)

// main is the entrypoint for the bikeshare application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	env, err := cli.Environ(cli.DotEnvFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read", cli.DotEnvFile+":", err)
		os.Exit(1)
	}

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:], env); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string, env map[string]string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW, env)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Turn a startup panic into an ordinary error so the caller picks the exit code.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	loader := hcl.NewLoader(appConfig.DataDir)
	bikeshareApp, err := app.NewApp(in, outW, errW, appConfig, loader)
	if err != nil {
		return err
	}

	return bikeshareApp.Run(context.Background())
}
