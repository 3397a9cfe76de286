package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_KokkosFFT(t *testing.T) {
	m, err := ParseFile(testPath("kokkos-fft-python.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	if m.Project.Name != "kokkos-fft-python" {
		t.Errorf("Name = %q, want %q", m.Project.Name, "kokkos-fft-python")
	}
	if m.Project.Version != "1.0" {
		t.Errorf("Version = %q, want %q", m.Project.Version, "1.0")
	}
	if m.Project.README != "README.md" {
		t.Errorf("README = %q, want %q", m.Project.README, "README.md")
	}
	if m.Project.RequiresPython != ">=3.8" {
		t.Errorf("RequiresPython = %q, want %q", m.Project.RequiresPython, ">=3.8")
	}

	wantDeps := []string{
		"pytest>=7.0",
		"numpy",
		"xarray[io]",
		"xarray[viz]",
		"matplotlib",
		"joblib",
		"pylint",
	}
	if !reflect.DeepEqual(m.Project.Dependencies, wantDeps) {
		t.Errorf("Dependencies = %v, want %v", m.Project.Dependencies, wantDeps)
	}

	if m.BuildSystem.BuildBackend != "hatchling.build" {
		t.Errorf("BuildBackend = %q, want %q", m.BuildSystem.BuildBackend, "hatchling.build")
	}
	if !reflect.DeepEqual(m.BuildSystem.Requires, []string{"hatchling"}) {
		t.Errorf("Requires = %v, want [hatchling]", m.BuildSystem.Requires)
	}

	targets := m.PackagingTargets()
	if !reflect.DeepEqual(targets["wheel"], []string{"python"}) {
		t.Errorf("wheel packages = %v, want [python]", targets["wheel"])
	}
}

func TestParseFile_DuplicatesAndOrderPreserved(t *testing.T) {
	m, err := ParseFile(testPath("full-featured.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	// "numpy" appears both constrained and bare; both entries survive in
	// declared order.
	want := []string{"numpy>=1.21,<2", "scipy", "numpy"}
	if !reflect.DeepEqual(m.Project.Dependencies, want) {
		t.Errorf("Dependencies = %v, want %v", m.Project.Dependencies, want)
	}
}

func TestParseFile_FullFeatured(t *testing.T) {
	m, err := ParseFile(testPath("full-featured.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	if len(m.Project.Authors) != 1 || m.Project.Authors[0].Email != "ada@example.org" {
		t.Errorf("Authors = %+v", m.Project.Authors)
	}
	if m.Project.License == nil || m.Project.License.Text != "MIT" {
		t.Errorf("License = %+v", m.Project.License)
	}
	if got := m.Project.OptionalDependencies["viz"]; !reflect.DeepEqual(got, []string{"matplotlib>=3.5", "seaborn"}) {
		t.Errorf("optional viz = %v", got)
	}
	if m.Project.Scripts["spectool"] != "spectral_toolkit.cli:main" {
		t.Errorf("Scripts = %v", m.Project.Scripts)
	}

	targets := m.PackagingTargets()
	if !reflect.DeepEqual(targets["wheel"], []string{"src/spectral_toolkit"}) {
		t.Errorf("wheel packages = %v", targets["wheel"])
	}
	if !reflect.DeepEqual(targets["sdist"], []string{"src"}) {
		t.Errorf("sdist packages = %v", targets["sdist"])
	}
}

func TestParse_Idempotent(t *testing.T) {
	data, err := os.ReadFile(testPath("kokkos-fft-python.toml"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	first, err := Parse(data)
	if err != nil {
		t.Fatalf("first Parse error: %v", err)
	}
	second, err := Parse(data)
	if err != nil {
		t.Fatalf("second Parse error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same document twice produced different manifests")
	}
}

func TestParseFile_MissingName(t *testing.T) {
	_, err := ParseFile(testPath("missing-name.toml"))
	if err == nil {
		t.Fatal("expected error for missing project.name")
	}
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T, want *MissingFieldError", err)
	}
	if missing.Field != "project.name" {
		t.Errorf("Field = %q, want %q", missing.Field, "project.name")
	}
}

func TestParseFile_MissingBackend(t *testing.T) {
	_, err := ParseFile(testPath("missing-backend.toml"))
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingFieldError", err)
	}
	if missing.Field != "build-system.build-backend" {
		t.Errorf("Field = %q, want %q", missing.Field, "build-system.build-backend")
	}
}

func TestParseFile_Malformed(t *testing.T) {
	_, err := ParseFile(testPath("not-toml.toml"))
	var malformed *MalformedManifestError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want *MalformedManifestError", err)
	}
	if malformed.Path == "" {
		t.Error("expected error to carry the source path")
	}
}

func TestParseFile_UnknownBackendAccepted(t *testing.T) {
	// Backend resolution belongs to the external build tool; an unknown
	// identifier must not fail parsing.
	m, err := ParseFile(testPath("unknown-backend.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.BuildSystem.BuildBackend != "frobnicator.build_api" {
		t.Errorf("BuildBackend = %q", m.BuildSystem.BuildBackend)
	}
}

func TestParseFile_DynamicVersion(t *testing.T) {
	m, err := ParseFile(testPath("dynamic-version.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.Project.Version != "" {
		t.Errorf("Version = %q, want empty for dynamic version", m.Project.Version)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.toml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, fixture := range []string{"kokkos-fft-python.toml", "full-featured.toml"} {
		t.Run(fixture, func(t *testing.T) {
			m, err := ParseFile(testPath(fixture))
			if err != nil {
				t.Fatalf("ParseFile error: %v", err)
			}

			out, err := Marshal(m)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}

			back, err := Parse(out)
			if err != nil {
				t.Fatalf("re-Parse error: %v", err)
			}
			if !reflect.DeepEqual(m, back) {
				t.Error("round-trip changed the manifest")
			}
		})
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	m, err := ParseFile(testPath("full-featured.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	a, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	b, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(a) != string(b) {
		t.Error("marshaling the same manifest twice produced different bytes")
	}
}
