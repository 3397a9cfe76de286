package manifest

import "fmt"

// MalformedManifestError indicates the document could not be structurally
// parsed as TOML.
type MalformedManifestError struct {
	Path string // source file, empty when parsed from memory
	Err  error
}

func (e *MalformedManifestError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed manifest %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed manifest: %v", e.Err)
}

func (e *MalformedManifestError) Unwrap() error { return e.Err }

// MissingFieldError indicates a required manifest field is absent or empty.
type MissingFieldError struct {
	Field string // dotted key, e.g. "project.name"
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("manifest missing required field %q", e.Field)
}

// InvalidSpecifierError indicates a dependency entry is not a valid PEP 508
// specifier string.
type InvalidSpecifierError struct {
	Field string // which list the entry came from
	Index int    // position within that list
	Err   error
}

func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Field, e.Index, e.Err)
}

func (e *InvalidSpecifierError) Unwrap() error { return e.Err }
