// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses a single HCL file, evaluates its expressions against an
// environment-aware evaluation context, and translates the result into the
// format-agnostic config.Model.
package hcl
