// Package cli is responsible for parsing command-line arguments and
// environment defaults, validating them, and handling process-level concerns
// like exit codes. It translates flags into the application's configuration.
package cli
