package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pypack-labs/pypack/internal/manifest"
)

func kokkosManifest() *manifest.Manifest {
	return &manifest.Manifest{
		BuildSystem: &manifest.BuildSystem{
			Requires:     []string{"hatchling"},
			BuildBackend: "hatchling.build",
		},
		Project: &manifest.Project{
			Name:           "kokkos-fft-python",
			Version:        "1.0",
			README:         "README.md",
			RequiresPython: ">=3.8",
			Dependencies: []string{
				"pytest>=7.0",
				"numpy",
				"xarray[io]",
				"xarray[viz]",
				"matplotlib",
				"joblib",
				"pylint",
			},
		},
		Tool: map[string]interface{}{
			"hatch": map[string]interface{}{
				"build": map[string]interface{}{
					"targets": map[string]interface{}{
						"wheel": map[string]interface{}{
							"packages": []interface{}{"python"},
						},
					},
				},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(kokkosManifest())

	if s.Name != "kokkos-fft-python" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.NormalizedName != "kokkos-fft-python" {
		t.Errorf("NormalizedName = %q", s.NormalizedName)
	}
	if s.Backend != "hatchling.build" {
		t.Errorf("Backend = %q", s.Backend)
	}
	if !s.BackendKnown || s.BackendProvider != "hatch" {
		t.Errorf("backend classification = (%q, %v), want (hatch, true)", s.BackendProvider, s.BackendKnown)
	}
	if s.DependencyCount != 7 {
		t.Errorf("DependencyCount = %d, want 7", s.DependencyCount)
	}
	if got := s.Targets["wheel"]; len(got) != 1 || got[0] != "python" {
		t.Errorf("wheel target = %v, want [python]", got)
	}
}

func TestSummarize_UnknownBackend(t *testing.T) {
	m := kokkosManifest()
	m.BuildSystem.BuildBackend = "frobnicator.build_api"

	s := Summarize(m)
	if s.BackendKnown {
		t.Error("frobnicator.build_api should not be a known backend")
	}

	var buf bytes.Buffer
	s.Print(&buf)
	if !strings.Contains(buf.String(), "unrecognized backend") {
		t.Errorf("output missing unrecognized-backend note:\n%s", buf.String())
	}
}

func TestSummarize_DynamicVersion(t *testing.T) {
	m := kokkosManifest()
	m.Project.Version = ""
	m.Project.Dynamic = []string{"version"}

	var buf bytes.Buffer
	Summarize(m).Print(&buf)
	if !strings.Contains(buf.String(), "(dynamic)") {
		t.Errorf("output missing dynamic version marker:\n%s", buf.String())
	}
}

func TestBuildDependencyView_Runtime(t *testing.T) {
	view, err := BuildDependencyView(kokkosManifest(), nil, false)
	if err != nil {
		t.Fatalf("BuildDependencyView error: %v", err)
	}
	if len(view.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(view.Groups))
	}

	runtime := view.Groups[0]
	if runtime.Name != "runtime" {
		t.Errorf("group name = %q", runtime.Name)
	}
	if len(runtime.Items) != 7 {
		t.Fatalf("items = %d, want 7", len(runtime.Items))
	}
	if runtime.Items[0].Spec != "pytest>=7.0" {
		t.Errorf("Items[0].Spec = %q, declared order not preserved", runtime.Items[0].Spec)
	}

	// xarray appears twice with different extras; the second entry is a
	// duplicate of the same package, and both entries survive.
	if runtime.Items[2].Duplicate {
		t.Error("first xarray entry flagged duplicate")
	}
	if !runtime.Items[3].Duplicate {
		t.Error("second xarray entry not flagged duplicate")
	}
}

func TestBuildDependencyView_WithBuildAndExtras(t *testing.T) {
	m := kokkosManifest()
	m.Project.OptionalDependencies = map[string][]string{
		"viz": {"seaborn", "numpy"},
	}

	view, err := BuildDependencyView(m, []string{"viz"}, true)
	if err != nil {
		t.Fatalf("BuildDependencyView error: %v", err)
	}
	if len(view.Groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(view.Groups))
	}
	if view.Groups[0].Name != "build" || view.Groups[2].Name != "extra:viz" {
		t.Errorf("group order = [%s %s %s]", view.Groups[0].Name, view.Groups[1].Name, view.Groups[2].Name)
	}

	// numpy already appeared in runtime, so the extra's entry is flagged.
	extra := view.Groups[2]
	if !extra.Items[1].Duplicate {
		t.Error("numpy in extra not flagged as duplicate of runtime entry")
	}
}

func TestBuildDependencyView_UnknownExtra(t *testing.T) {
	_, err := BuildDependencyView(kokkosManifest(), []string{"gpu"}, false)
	if err == nil {
		t.Fatal("expected error for undeclared extra")
	}
}

func TestBuildDependencyView_UnparseableEntry(t *testing.T) {
	m := kokkosManifest()
	m.Project.Dependencies = []string{"numpy", ">=nope"}

	view, err := BuildDependencyView(m, nil, false)
	if err != nil {
		t.Fatalf("BuildDependencyView error: %v", err)
	}
	item := view.Groups[0].Items[1]
	if item.ParseErr == nil {
		t.Error("expected ParseErr on malformed entry")
	}

	var buf bytes.Buffer
	view.Print(&buf)
	if !strings.Contains(buf.String(), "(unparseable)") {
		t.Errorf("output missing unparseable marker:\n%s", buf.String())
	}
}

func TestCheckPython(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"3.8", true},
		{"3.12", true},
		{"3.7", false},
		{"2.7", false},
	}
	m := kokkosManifest()
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := CheckPython(m, tt.version)
			if err != nil {
				t.Fatalf("CheckPython error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CheckPython(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestCheckPython_NoConstraint(t *testing.T) {
	m := kokkosManifest()
	m.Project.RequiresPython = ""
	ok, err := CheckPython(m, "2.6")
	if err != nil {
		t.Fatalf("CheckPython error: %v", err)
	}
	if !ok {
		t.Error("manifest without requires-python should accept any interpreter")
	}
}

func TestBackendProvider(t *testing.T) {
	if provider, ok := BackendProvider("setuptools.build_meta"); !ok || provider != "setuptools" {
		t.Errorf("BackendProvider = (%q, %v)", provider, ok)
	}
	if _, ok := BackendProvider("made.up.backend"); ok {
		t.Error("made-up backend reported as known")
	}
}
