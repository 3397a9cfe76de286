// Package cli defines the Cobra command tree for the pypack CLI. Each file
// in this package registers one top-level command (show, validate, deps,
// check, fmt, config, version) with the root command. Command
// implementations delegate to internal packages for business logic and only
// handle flag parsing, I/O formatting, and exit status.
package cli
