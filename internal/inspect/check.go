package inspect

import (
	"fmt"

	"github.com/pypack-labs/pypack/internal/manifest"
	"github.com/pypack-labs/pypack/internal/specifier"
)

// CheckPython reports whether a concrete interpreter version satisfies the
// manifest's requires-python constraint. A manifest without the field
// accepts every interpreter.
func CheckPython(m *manifest.Manifest, version string) (bool, error) {
	if m.Project == nil || m.Project.RequiresPython == "" {
		return true, nil
	}

	cs, err := specifier.ParseConstraints(m.Project.RequiresPython)
	if err != nil {
		return false, fmt.Errorf("parsing requires-python %q: %w", m.Project.RequiresPython, err)
	}
	return cs.Check(version)
}
