// Package platform contains small OS-conditional shims so the rest of the
// codebase stays free of runtime.GOOS checks for filesystem details.
package platform
