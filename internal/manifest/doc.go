// Package manifest handles parsing and validation of Python package
// manifests (pyproject.toml). Parse produces a normalized Manifest value
// from TOML text; Validate checks the structural invariants every usable
// manifest must hold; ValidateSchema additionally checks the raw document
// against the embedded JSON Schema for per-field diagnostics. Marshal is
// the inverse of Parse and emits a canonical TOML rendering.
package manifest
