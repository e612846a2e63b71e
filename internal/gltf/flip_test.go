package gltf

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// floatBytes encodes float32 values as a little-endian byte buffer.
func floatBytes(vals ...float32) []byte {
	buf := make([]byte, 0, len(vals)*4)
	for _, v := range vals {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		buf = append(buf, b[:]...)
	}
	return buf
}

func readFloats(t *testing.T, data []byte) []float32 {
	t.Helper()
	if len(data)%4 != 0 {
		t.Fatalf("buffer length %d is not a multiple of 4", len(data))
	}
	out := make([]float32, 0, len(data)/4)
	for off := 0; off < len(data); off += 4 {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
	}
	return out
}

// writeAsset writes a .gltf document and its model.bin buffer into a temp
// directory and returns the .gltf path.
func writeAsset(t *testing.T, doc string, bin []byte) string {
	t.Helper()
	dir := t.TempDir()
	gltfPath := filepath.Join(dir, "model.gltf")
	if err := os.WriteFile(gltfPath, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "model.bin"), bin, 0644); err != nil {
		t.Fatal(err)
	}
	return gltfPath
}

const singleNormalDoc = `{
  "buffers": [{"uri": "model.bin", "byteLength": 12}],
  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 12}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 1, "type": "VEC3"}],
  "meshes": [{"primitives": [{"attributes": {"NORMAL": 0}}]}]
}`

func TestFlipSingleNormal(t *testing.T) {
	gltfPath := writeAsset(t, singleNormalDoc, floatBytes(1.0, -2.0, 3.0))

	asset, err := Load(gltfPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var warn bytes.Buffer
	flipped := asset.FlipNormals(&warn)
	if flipped != 1 {
		t.Errorf("flipped = %d, want 1", flipped)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warn.String())
	}

	if err := asset.WriteBack(); err != nil {
		t.Fatalf("WriteBack() error: %v", err)
	}

	data, err := os.ReadFile(asset.BinPath)
	if err != nil {
		t.Fatal(err)
	}
	got := readFloats(t, data)
	want := []float32{-1.0, 2.0, -3.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlipTwiceRestoresOriginalBytes(t *testing.T) {
	original := floatBytes(0.5, -0.25, 0.75)
	gltfPath := writeAsset(t, singleNormalDoc, append([]byte(nil), original...))

	for run := 0; run < 2; run++ {
		asset, err := Load(gltfPath)
		if err != nil {
			t.Fatalf("run %d: Load() error: %v", run, err)
		}
		if n := asset.FlipNormals(nil); n != 1 {
			t.Fatalf("run %d: flipped = %d, want 1", run, n)
		}
		if err := asset.WriteBack(); err != nil {
			t.Fatalf("run %d: WriteBack() error: %v", run, err)
		}
	}

	binPath := filepath.Join(filepath.Dir(gltfPath), "model.bin")
	data, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, original) {
		t.Errorf("double flip did not restore original bytes: got %v, want %v", data, original)
	}
}

func TestFlipSkipsNonFloatVec3Accessor(t *testing.T) {
	doc := `{
	  "buffers": [{"uri": "model.bin", "byteLength": 12}],
	  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 12}],
	  "accessors": [{"bufferView": 0, "componentType": 5123, "count": 1, "type": "VEC3"}],
	  "meshes": [{"primitives": [{"attributes": {"NORMAL": 0}}]}]
	}`
	original := floatBytes(1.0, 2.0, 3.0)
	gltfPath := writeAsset(t, doc, append([]byte(nil), original...))

	asset, err := Load(gltfPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var warn bytes.Buffer
	if n := asset.FlipNormals(&warn); n != 0 {
		t.Errorf("flipped = %d, want 0", n)
	}
	if !strings.Contains(warn.String(), "not VEC3 float") {
		t.Errorf("warning = %q, want it to mention the unsupported accessor", warn.String())
	}
	if !bytes.Equal(asset.Bin, original) {
		t.Error("buffer was modified for a skipped accessor")
	}
}

func TestFlipSkipsInvalidAccessorIndex(t *testing.T) {
	doc := `{
	  "buffers": [{"uri": "model.bin", "byteLength": 12}],
	  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 12}],
	  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 1, "type": "VEC3"}],
	  "meshes": [{"primitives": [{"attributes": {"NORMAL": 7}}]}]
	}`
	gltfPath := writeAsset(t, doc, floatBytes(1.0, 2.0, 3.0))

	asset, err := Load(gltfPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var warn bytes.Buffer
	if n := asset.FlipNormals(&warn); n != 0 {
		t.Errorf("flipped = %d, want 0", n)
	}
	if !strings.Contains(warn.String(), "out of range") {
		t.Errorf("warning = %q, want out-of-range mention", warn.String())
	}
}

func TestFlipSkipsOutOfRangeElements(t *testing.T) {
	// Accessor claims two normals but the buffer holds only one.
	doc := `{
	  "buffers": [{"uri": "model.bin", "byteLength": 12}],
	  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 24}],
	  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 2, "type": "VEC3"}],
	  "meshes": [{"primitives": [{"attributes": {"NORMAL": 0}}]}]
	}`
	gltfPath := writeAsset(t, doc, floatBytes(1.0, -2.0, 3.0))

	asset, err := Load(gltfPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var warn bytes.Buffer
	asset.FlipNormals(&warn)

	if !strings.Contains(warn.String(), "buffer overflow") {
		t.Errorf("warning = %q, want buffer overflow mention", warn.String())
	}

	// The in-range element must still be flipped.
	got := readFloats(t, asset.Bin)
	want := []float32{-1.0, 2.0, -3.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlipNoNormalAttributes(t *testing.T) {
	doc := `{
	  "buffers": [{"uri": "model.bin", "byteLength": 12}],
	  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 12}],
	  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 1, "type": "VEC3"}],
	  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}]
	}`
	original := floatBytes(1.0, 2.0, 3.0)
	gltfPath := writeAsset(t, doc, append([]byte(nil), original...))

	asset, err := Load(gltfPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n := asset.FlipNormals(nil); n != 0 {
		t.Errorf("flipped = %d, want 0", n)
	}
	if !bytes.Equal(asset.Bin, original) {
		t.Error("buffer was modified although no NORMAL attribute exists")
	}
}

func TestFlipStridedNormals(t *testing.T) {
	// Two interleaved normals with 4 bytes of padding after each VEC3.
	bin := make([]byte, 0, 32)
	bin = append(bin, floatBytes(1.0, 2.0, 3.0, 99.0)...)
	bin = append(bin, floatBytes(-4.0, 5.0, -6.0, 77.0)...)

	doc := `{
	  "buffers": [{"uri": "model.bin", "byteLength": 32}],
	  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 32, "byteStride": 16}],
	  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 2, "type": "VEC3"}],
	  "meshes": [{"primitives": [{"attributes": {"NORMAL": 0}}]}]
	}`
	gltfPath := writeAsset(t, doc, bin)

	asset, err := Load(gltfPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n := asset.FlipNormals(nil); n != 2 {
		t.Errorf("flipped = %d, want 2", n)
	}

	got := readFloats(t, asset.Bin)
	want := []float32{-1.0, -2.0, -3.0, 99.0, 4.0, -5.0, 6.0, 77.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlipHonorsAccessorByteOffset(t *testing.T) {
	doc := `{
	  "buffers": [{"uri": "model.bin", "byteLength": 24}],
	  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 24}],
	  "accessors": [{"bufferView": 0, "byteOffset": 12, "componentType": 5126, "count": 1, "type": "VEC3"}],
	  "meshes": [{"primitives": [{"attributes": {"NORMAL": 0}}]}]
	}`
	gltfPath := writeAsset(t, doc, floatBytes(1.0, 2.0, 3.0, 4.0, 5.0, 6.0))

	asset, err := Load(gltfPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n := asset.FlipNormals(nil); n != 1 {
		t.Errorf("flipped = %d, want 1", n)
	}

	got := readFloats(t, asset.Bin)
	want := []float32{1.0, 2.0, 3.0, -4.0, -5.0, -6.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
