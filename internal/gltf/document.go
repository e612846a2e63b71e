package gltf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Asset ties a parsed glTF document to its on-disk binary buffer.
type Asset struct {
	Path    string // resolved .gltf file path
	BinPath string // resolved binary buffer path
	Doc     *Document
	Bin     []byte
}

// Load resolves path to a .gltf file (directly, or the first .gltf inside a
// directory), parses and validates the document, and reads the binary buffer
// referenced by buffers[0] into memory.
func Load(path string) (*Asset, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resolved, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing glTF JSON in %s: %w", resolved, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", resolved, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid glTF document %s: %s", resolved, result.Summary())
	}

	// Only the first buffer is consulted; the schema guarantees it exists
	// and carries a URI.
	uri := doc.Buffers[0].URI
	binPath := filepath.Join(filepath.Dir(resolved), filepath.FromSlash(uri))

	bin, err := os.ReadFile(binPath)
	if err != nil {
		return nil, fmt.Errorf("reading binary buffer %s: %w", binPath, err)
	}

	return &Asset{
		Path:    resolved,
		BinPath: binPath,
		Doc:     &doc,
		Bin:     bin,
	}, nil
}

// ResolvePath returns path itself when it names a .gltf file, or the first
// .gltf file (in sorted directory order) when it names a directory.
func ResolvePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("asset path %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	// os.ReadDir returns entries sorted by filename, so the pick is
	// deterministic.
	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("reading directory %s: %w", path, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".gltf") {
			return filepath.Join(path, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no .gltf file found in directory %s", path)
}

// WriteBack overwrites the binary buffer file with the in-memory bytes,
// preserving the file's permission bits.
func (a *Asset) WriteBack() error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(a.BinPath); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(a.BinPath, a.Bin, mode); err != nil {
		return fmt.Errorf("writing binary buffer %s: %w", a.BinPath, err)
	}
	return nil
}
