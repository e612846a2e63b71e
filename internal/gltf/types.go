package gltf

// accessor.componentType value for 32-bit IEEE754 floats.
const ComponentTypeFloat = 5126

// accessor.type value for 3-component vectors.
const TypeVec3 = "VEC3"

// Document is the subset of a glTF 2.0 root object this tool reads.
type Document struct {
	Accessors   []Accessor   `json:"accessors,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	Meshes      []Mesh       `json:"meshes,omitempty"`
}

// Accessor describes a typed view into a buffer view.
type Accessor struct {
	BufferView    *int   `json:"bufferView,omitempty"`
	ByteOffset    int    `json:"byteOffset,omitempty"` // Default is 0.
	ComponentType int    `json:"componentType"`
	Count         int    `json:"count"`
	Type          string `json:"type"`
}

// BufferView describes a byte range and stride within a buffer.
type BufferView struct {
	Buffer     int  `json:"buffer"`
	ByteOffset int  `json:"byteOffset,omitempty"` // Default is 0.
	ByteLength int  `json:"byteLength"`
	ByteStride *int `json:"byteStride,omitempty"`
}

// Buffer references binary vertex data, external via a relative URI.
type Buffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
}

// Mesh holds a list of geometry primitives.
type Mesh struct {
	Name       string      `json:"name,omitempty"`
	Primitives []Primitive `json:"primitives,omitempty"`
}

// Primitive maps attribute semantics ("POSITION", "NORMAL", ...) to
// accessor indices.
type Primitive struct {
	Attributes map[string]int `json:"attributes,omitempty"`
}
