// Package config defines the format-agnostic configuration model for a run,
// along with the Loader interface implemented by the concrete file formats.
//
// The `config.Model` is what the app merges under the command-line flags.
// Concrete implementations, for HCL and YAML, live in separate packages.
package config
