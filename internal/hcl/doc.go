// Package hcl provides the HCL implementation of config.Loader. City tables
// are written as `city "<name>" { ... }` blocks; the attribute expressions
// can reference the `data_dir` variable and a few string functions.
package hcl
