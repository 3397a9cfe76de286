// Package inspect turns a parsed manifest into human-readable reports:
// an identity summary, a grouped dependency view, and an interpreter
// compatibility check. It only reads the manifest value; nothing here
// touches the network or the filesystem.
package inspect
