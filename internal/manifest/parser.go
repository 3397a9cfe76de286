package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes pyproject.toml text into a Manifest and checks that the
// fields every consumer needs are present. It is a pure single-pass
// transformation: the same bytes always yield the same Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &MalformedManifestError{Err: err}
	}

	if err := checkRequired(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseFile reads a pyproject.toml file and parses it.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		if malformed, ok := err.(*MalformedManifestError); ok {
			malformed.Path = path
		}
		return nil, err
	}
	return m, nil
}

// checkRequired enforces presence of the identity fields and the build
// backend. Everything else is optional at parse time; Validate covers the
// remaining invariants.
func checkRequired(m *Manifest) error {
	if m.Project == nil || m.Project.Name == "" {
		return &MissingFieldError{Field: "project.name"}
	}
	if m.Project.Version == "" && !isDynamic(m.Project, "version") {
		return &MissingFieldError{Field: "project.version"}
	}
	if m.BuildSystem == nil || m.BuildSystem.BuildBackend == "" {
		return &MissingFieldError{Field: "build-system.build-backend"}
	}
	return nil
}

// isDynamic reports whether a project field is declared in the dynamic
// list, meaning the build backend computes it at build time.
func isDynamic(p *Project, field string) bool {
	for _, d := range p.Dynamic {
		if d == field {
			return true
		}
	}
	return false
}
