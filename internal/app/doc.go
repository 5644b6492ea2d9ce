// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the interaction loop that drives filter
// collection, loading, reporting, paging and restarts, decoupled from any
// specific entrypoint like a CLI.
package app
