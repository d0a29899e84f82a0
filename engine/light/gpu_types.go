package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULightUniform layout exactly (32 bytes).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULightUniform is the GPU-aligned representation of the directional light.
// Matches the WGSL Light struct layout exactly (see GPULightSource).
// Size: 32 bytes (two vec3<f32> each packed with a trailing f32).
type GPULightUniform struct {
	Direction [3]float32 // offset  0: normalized direction light travels
	Intensity float32    // offset 12: diffuse multiplier (0 when disabled)
	Color     [3]float32 // offset 16: RGB color
	Ambient   float32    // offset 28: ambient fraction of the base color
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, 32)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Direction[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Ambient))
	return buf
}
