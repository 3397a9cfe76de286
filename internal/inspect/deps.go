package inspect

import (
	"fmt"
	"io"

	"github.com/pypack-labs/pypack/internal/manifest"
	"github.com/pypack-labs/pypack/internal/specifier"
)

// DependencyItem is one specifier within a dependency group.
type DependencyItem struct {
	Spec      string                 // the specifier as written
	Req       *specifier.Requirement // nil when the entry failed to parse
	ParseErr  error
	Duplicate bool // an earlier entry in the view names the same package
}

// DependencyGroup is a named run of dependency items in declared order.
type DependencyGroup struct {
	Name  string // "build", "runtime", or "extra:<name>"
	Items []DependencyItem
}

// DependencyView is the grouped dependency listing for one manifest.
// Entry order within each group matches the document; duplicates are
// flagged, never removed.
type DependencyView struct {
	Groups []DependencyGroup
}

// BuildDependencyView assembles the dependency groups for a manifest:
// build requirements when includeBuild is set, runtime dependencies, and
// one group per requested extra. Requesting an extra the manifest does not
// declare is an error.
func BuildDependencyView(m *manifest.Manifest, extras []string, includeBuild bool) (*DependencyView, error) {
	view := &DependencyView{}
	seen := make(map[string]bool)

	if includeBuild && m.BuildSystem != nil {
		view.Groups = append(view.Groups, buildGroup("build", m.BuildSystem.Requires, seen))
	}

	if m.Project != nil {
		view.Groups = append(view.Groups, buildGroup("runtime", m.Project.Dependencies, seen))

		for _, extra := range extras {
			deps, ok := m.Project.OptionalDependencies[extra]
			if !ok {
				return nil, fmt.Errorf("manifest declares no extra %q", extra)
			}
			view.Groups = append(view.Groups, buildGroup("extra:"+extra, deps, seen))
		}
	}

	return view, nil
}

// buildGroup parses each specifier and flags repeats of an already-seen
// normalized package name. The seen set spans groups so a runtime entry
// repeated inside an extra is flagged too.
func buildGroup(name string, specs []string, seen map[string]bool) DependencyGroup {
	group := DependencyGroup{Name: name}
	for _, spec := range specs {
		item := DependencyItem{Spec: spec}
		req, err := specifier.Parse(spec)
		if err != nil {
			item.ParseErr = err
		} else {
			item.Req = req
			key := specifier.Normalize(req.Name)
			item.Duplicate = seen[key]
			seen[key] = true
		}
		group.Items = append(group.Items, item)
	}
	return group
}

// Print writes the view with box-drawing connectors, one group per block.
func (v *DependencyView) Print(w io.Writer) {
	for _, group := range v.Groups {
		fmt.Fprintf(w, "  %s\n", group.Name)
		for i, item := range group.Items {
			connector := "├── "
			if i == len(group.Items)-1 {
				connector = "└── "
			}

			label := item.Spec
			switch {
			case item.ParseErr != nil:
				label += " (unparseable)"
			case item.Duplicate:
				label += " (duplicate)"
			}
			fmt.Fprintf(w, "  %s%s\n", connector, label)
		}
		if len(group.Items) == 0 {
			fmt.Fprintln(w, "  └── (none)")
		}
		fmt.Fprintln(w)
	}
}
