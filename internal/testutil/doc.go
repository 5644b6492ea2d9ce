// Package testutil holds shared fixtures for tests: trip sources written to
// temporary directories, in-memory datasets, and a thread-safe output buffer.
package testutil
