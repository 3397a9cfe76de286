// Package specifier parses Python dependency specifier strings (PEP 508)
// and version constraint expressions (PEP 440). A specifier names a package,
// optionally selects extras, constrains acceptable versions, and may carry an
// environment marker. The package also normalizes distribution names per
// PEP 503 so that "Foo.Bar_baz" and "foo-bar-baz" compare equal.
package specifier
