package gltf

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	componentSize = 4  // float32
	vec3Stride    = 12 // tightly packed VEC3 float32
)

// FlipNormals negates the X, Y, Z components of every vertex normal
// referenced by a NORMAL attribute anywhere in the document, mutating the
// in-memory buffer. Recoverable problems (unsupported accessors, invalid
// indices, out-of-range elements) are reported on warn and skipped.
// Returns the number of normals flipped.
func (a *Asset) FlipNormals(warn io.Writer) int {
	if warn == nil {
		warn = io.Discard
	}

	flipped := 0
	for _, mesh := range a.Doc.Meshes {
		for _, prim := range mesh.Primitives {
			idx, ok := prim.Attributes["NORMAL"]
			if !ok {
				continue
			}
			flipped += a.flipAccessor(idx, warn)
		}
	}
	return flipped
}

// flipAccessor negates all normals referenced by one accessor. A zero return
// means the accessor was skipped or empty; skipping never aborts the run.
func (a *Asset) flipAccessor(idx int, warn io.Writer) int {
	if idx < 0 || idx >= len(a.Doc.Accessors) {
		fmt.Fprintf(warn, "Warning: NORMAL accessor index %d out of range, skipping\n", idx)
		return 0
	}
	acc := a.Doc.Accessors[idx]

	if acc.Type != TypeVec3 || acc.ComponentType != ComponentTypeFloat {
		fmt.Fprintf(warn, "Warning: NORMAL accessor %d is not VEC3 float, skipping\n", idx)
		return 0
	}

	if acc.BufferView == nil || *acc.BufferView < 0 || *acc.BufferView >= len(a.Doc.BufferViews) {
		fmt.Fprintf(warn, "Warning: NORMAL accessor %d has no valid buffer view, skipping\n", idx)
		return 0
	}
	view := a.Doc.BufferViews[*acc.BufferView]

	stride := vec3Stride
	if view.ByteStride != nil {
		stride = *view.ByteStride
	}
	base := view.ByteOffset + acc.ByteOffset

	for i := 0; i < acc.Count; i++ {
		elem := base + i*stride
		for c := 0; c < 3; c++ {
			off := elem + c*componentSize
			if off < 0 || off+componentSize > len(a.Bin) {
				fmt.Fprintf(warn, "Warning: buffer overflow at normal %d, component %d\n", i, c)
				continue
			}
			bits := binary.LittleEndian.Uint32(a.Bin[off:])
			value := math.Float32frombits(bits)
			binary.LittleEndian.PutUint32(a.Bin[off:], math.Float32bits(-value))
		}
	}
	return acc.Count
}
