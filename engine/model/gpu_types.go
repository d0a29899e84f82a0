package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the VertexInput struct in the mesh shader.
// Size: 24 bytes (two vec3<f32> attributes, tightly packed in the vertex buffer).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 24)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	return buf
}

// GPUMeshUniform is the GPU-aligned per-mesh uniform block: the model-to-world matrix
// and the mesh's base color.
// Matches the MeshUniform struct in the mesh shader.
// Size: 80 bytes (mat4x4<f32> + vec4<f32>, no padding required).
type GPUMeshUniform struct {
	Model [16]float32 // offset  0: 4×4 model-to-world transform matrix (64 bytes)
	Color [4]float32  // offset 64: linear RGBA base color (16 bytes)
}

// Size returns the size of the GPUMeshUniform struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMeshUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMeshUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload.
func (g *GPUMeshUniform) Marshal() []byte {
	buf := make([]byte, 80)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Color[i]))
	}
	return buf
}

// ComputeBoundingRadius computes a bounding sphere radius centered at the origin from
// GPUVertex positions. The radius is the maximum distance from the origin
// across all vertices in the slice.
//
// Parameters:
//   - vertices: the vertex data to compute the bounding radius from
//
// Returns:
//   - float32: the maximum distance from the origin
func ComputeBoundingRadius(vertices []GPUVertex) float32 {
	var maxDistSq float32
	for _, v := range vertices {
		p := v.Position
		distSq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if distSq > maxDistSq {
			maxDistSq = distSq
		}
	}
	return float32(math.Sqrt(float64(maxDistSq)))
}

// ColorFromHex converts a 0xRRGGBB value to an opaque RGBA color with components in [0, 1].
//
// Parameters:
//   - hex: packed 24-bit color
//
// Returns:
//   - [4]float32: RGBA color
func ColorFromHex(hex uint32) [4]float32 {
	return [4]float32{
		float32((hex>>16)&0xFF) / 255,
		float32((hex>>8)&0xFF) / 255,
		float32(hex&0xFF) / 255,
		1,
	}
}
