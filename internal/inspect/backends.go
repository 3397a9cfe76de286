package inspect

// knownBackends maps build-backend identifiers to the project that provides
// them. Used for display only: an identifier not listed here is still
// accepted everywhere, since resolving the backend is the build frontend's
// job, not ours.
var knownBackends = map[string]string{
	"hatchling.build":         "hatch",
	"setuptools.build_meta":   "setuptools",
	"flit_core.buildapi":      "flit",
	"poetry.core.masonry.api": "poetry",
	"maturin":                 "maturin",
	"scikit_build_core.build": "scikit-build-core",
	"mesonpy":                 "meson-python",
	"pdm.backend":             "pdm",
	"whey":                    "whey",
	"enscons.api":             "enscons",
}

// BackendProvider returns the distribution that provides a backend
// identifier and whether the identifier is a commonly known one.
func BackendProvider(backend string) (string, bool) {
	provider, ok := knownBackends[backend]
	return provider, ok
}
