// Package cli defines the Cobra command tree for the amentreg CLI. Each file
// registers one top-level command with the root command. Commands resolve
// settings through internal/config and delegate to internal/registry; they
// only handle arguments, output formatting and exit codes.
package cli
