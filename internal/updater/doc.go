// Package updater checks GitHub for newer pypack releases and caches the
// result so the root command can print a non-blocking update banner.
// Downloading and swapping the binary is left to the package manager the
// user installed pypack with.
package updater
