// Package config defines the format-agnostic city table the application runs
// against, along with the Loader interface that produces it.
//
// The `config.Model` is read-only once loaded and is passed explicitly to the
// dataset loader and the interaction loop. Concrete loaders, such as the HCL
// one, live in separate packages.
package config
