package manifest

// Manifest is the normalized form of a pyproject.toml document.
// Field layout follows the project-metadata specification:
// https://packaging.python.org/en/latest/specifications/pyproject-toml/
type Manifest struct {
	BuildSystem *BuildSystem           `toml:"build-system,omitempty" json:"build-system,omitempty"`
	Project     *Project               `toml:"project,omitempty" json:"project,omitempty"`
	Tool        map[string]interface{} `toml:"tool,omitempty" json:"tool,omitempty"`
}

// BuildSystem declares the tool that turns source into a distributable
// artifact, together with the build-time dependencies it needs.
type BuildSystem struct {
	Requires     []string `toml:"requires,omitempty" json:"requires,omitempty"`
	BuildBackend string   `toml:"build-backend,omitempty" json:"build-backend,omitempty"`
}

// Project carries the package identity and runtime requirements.
type Project struct {
	Name        string `toml:"name,omitempty" json:"name,omitempty"`
	Version     string `toml:"version,omitempty" json:"version,omitempty"`
	Description string `toml:"description,omitempty" json:"description,omitempty"`
	// README is a relative path to a .md or .rst file.
	README string `toml:"readme,omitempty" json:"readme,omitempty"`
	// RequiresPython is the interpreter constraint, e.g. ">=3.8".
	RequiresPython string `toml:"requires-python,omitempty" json:"requires-python,omitempty"`
	// Dependencies are kept in declared order and never deduplicated;
	// the order is reproducible resolver input, not a priority.
	Dependencies []string `toml:"dependencies,omitempty" json:"dependencies,omitempty"`
	// OptionalDependencies maps an extra name to the specifiers that
	// become required when the extra is enabled.
	OptionalDependencies map[string][]string `toml:"optional-dependencies,omitempty" json:"optional-dependencies,omitempty"`
	Authors              []Contact           `toml:"authors,omitempty" json:"authors,omitempty"`
	Maintainers          []Contact           `toml:"maintainers,omitempty" json:"maintainers,omitempty"`
	License              *License            `toml:"license,omitempty" json:"license,omitempty"`
	Keywords             []string            `toml:"keywords,omitempty" json:"keywords,omitempty"`
	Classifiers          []string            `toml:"classifiers,omitempty" json:"classifiers,omitempty"`
	URLs                 map[string]string   `toml:"urls,omitempty" json:"urls,omitempty"`
	Scripts              map[string]string   `toml:"scripts,omitempty" json:"scripts,omitempty"`
	Dynamic              []string            `toml:"dynamic,omitempty" json:"dynamic,omitempty"`
}

// Contact is an author or maintainer entry.
type Contact struct {
	Name  string `toml:"name,omitempty" json:"name,omitempty"`
	Email string `toml:"email,omitempty" json:"email,omitempty"`
}

// License holds either a path to a license file or the license text/name,
// never both.
type License struct {
	File string `toml:"file,omitempty" json:"file,omitempty"`
	Text string `toml:"text,omitempty" json:"text,omitempty"`
}

// PackagingTargets extracts the hatch build target table as a mapping from
// target kind (e.g. "wheel", "sdist") to the logical package paths it
// includes. Returns an empty map when no targets are declared.
func (m *Manifest) PackagingTargets() map[string][]string {
	targets := make(map[string][]string)

	node := lookupTable(m.Tool, "hatch", "build", "targets")
	for kind, raw := range node {
		table, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		targets[kind] = stringList(table["packages"])
	}
	return targets
}

// lookupTable walks nested TOML tables by key, returning nil when any
// segment is absent or not a table.
func lookupTable(node map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		raw, ok := node[key]
		if !ok {
			return nil
		}
		node, ok = raw.(map[string]interface{})
		if !ok {
			return nil
		}
	}
	return node
}

// stringList coerces a decoded TOML array into a string slice, skipping
// non-string elements.
func stringList(raw interface{}) []string {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
