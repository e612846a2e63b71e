// Package gltf loads the subset of a glTF 2.0 asset needed to patch vertex
// normals in its external binary buffer. It is not a general glTF loader:
// only buffers[0] is consulted, the buffer URI must be a plain relative file
// path, and GLB containers and data: URIs are unsupported.
package gltf
