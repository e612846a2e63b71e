// Package scaffold generates new script component source files from
// embedded templates. A script component is a Go type registered with the
// engine's script registry so scene files can instantiate it by name.
package scaffold
