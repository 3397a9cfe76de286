package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pypack-labs/pypack/internal/manifest"
	"github.com/pypack-labs/pypack/internal/specifier"
)

// Summary is a normalized report of a manifest's identity and shape.
type Summary struct {
	Name            string
	NormalizedName  string
	Version         string
	Description     string
	README          string
	RequiresPython  string
	Backend         string
	BackendProvider string // empty when the backend is not a known one
	BackendKnown    bool
	BuildRequires   []string
	DependencyCount int
	Extras          []string // sorted extra names
	Targets         map[string][]string
}

// Summarize builds a Summary from a parsed manifest.
func Summarize(m *manifest.Manifest) *Summary {
	s := &Summary{
		Targets: m.PackagingTargets(),
	}

	if m.Project != nil {
		s.Name = m.Project.Name
		s.NormalizedName = specifier.Normalize(m.Project.Name)
		s.Version = m.Project.Version
		s.Description = m.Project.Description
		s.README = m.Project.README
		s.RequiresPython = m.Project.RequiresPython
		s.DependencyCount = len(m.Project.Dependencies)
		for extra := range m.Project.OptionalDependencies {
			s.Extras = append(s.Extras, extra)
		}
		sort.Strings(s.Extras)
	}

	if m.BuildSystem != nil {
		s.Backend = m.BuildSystem.BuildBackend
		s.BuildRequires = m.BuildSystem.Requires
		s.BackendProvider, s.BackendKnown = BackendProvider(s.Backend)
	}

	return s
}

// Print writes the summary in the aligned key/value layout the show
// command uses.
func (s *Summary) Print(w io.Writer) {
	version := s.Version
	if version == "" {
		version = "(dynamic)"
	}
	fmt.Fprintf(w, "  %s %s\n", s.Name, version)
	if s.Description != "" {
		fmt.Fprintf(w, "  %s\n", s.Description)
	}
	fmt.Fprintln(w)

	if s.RequiresPython != "" {
		fmt.Fprintf(w, "  requires-python: %s\n", s.RequiresPython)
	}
	if s.README != "" {
		fmt.Fprintf(w, "  readme:          %s\n", s.README)
	}

	backend := s.Backend
	if s.BackendKnown {
		backend += fmt.Sprintf(" (provided by %s)", s.BackendProvider)
	} else if backend != "" {
		backend += " (unrecognized backend, left to the build frontend)"
	}
	if backend != "" {
		fmt.Fprintf(w, "  build-backend:   %s\n", backend)
	}
	if len(s.BuildRequires) > 0 {
		fmt.Fprintf(w, "  build-requires:  %s\n", strings.Join(s.BuildRequires, ", "))
	}

	fmt.Fprintf(w, "  dependencies:    %d\n", s.DependencyCount)
	if len(s.Extras) > 0 {
		fmt.Fprintf(w, "  extras:          %s\n", strings.Join(s.Extras, ", "))
	}

	if len(s.Targets) > 0 {
		kinds := make([]string, 0, len(s.Targets))
		for kind := range s.Targets {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Fprintf(w, "  %s packages:  %s\n", kind, strings.Join(s.Targets[kind], ", "))
		}
	}
}
