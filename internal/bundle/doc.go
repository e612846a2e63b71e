// Package bundle compiles the game binary and packages it with its assets:
// a .app bundle on macOS, a flat directory elsewhere. The Go toolchain is
// invoked as a subprocess and treated as a black box.
package bundle
