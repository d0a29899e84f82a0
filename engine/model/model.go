package model

import (
	"encoding/binary"
	"sync"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	mu *sync.Mutex

	name           string
	vertices       []GPUVertex
	indices        []uint32
	color          [4]float32
	boundingRadius float32
}

// Mesh defines the interface for one drawable part of a viewed object: an indexed
// triangle list with a single base color.
// Meshes are produced by a loader source and uploaded to the GPU by the renderer.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices retrieves the mesh vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertex slice (shared, do not modify)
	Vertices() []GPUVertex

	// Indices retrieves the triangle list indices.
	//
	// Returns:
	//   - []uint32: the index slice (shared, do not modify)
	Indices() []uint32

	// VertexData serializes the vertices for GPU upload.
	//
	// Returns:
	//   - []byte: tightly packed vertex buffer contents
	VertexData() []byte

	// IndexData serializes the indices for GPU upload as little-endian uint32.
	//
	// Returns:
	//   - []byte: index buffer contents
	IndexData() []byte

	// IndexCount returns the number of indices to draw.
	IndexCount() int

	// Color retrieves the base color as linear RGBA.
	Color() [4]float32

	// SetColor sets the base color.
	//
	// Parameters:
	//   - rgba: linear RGBA color with components in [0, 1]
	SetColor(rgba [4]float32)

	// BoundingRadius returns the radius of the origin-centered sphere enclosing every vertex.
	BoundingRadius() float32
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh using the provided options.
// The bounding radius is computed from the vertices after all options are applied.
//
// Parameters:
//   - options: variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{
		mu:    &sync.Mutex{},
		color: [4]float32{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	m.boundingRadius = ComputeBoundingRadius(m.vertices)
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []GPUVertex {
	return m.vertices
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) VertexData() []byte {
	if len(m.vertices) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(m.vertices)*m.vertices[0].Size())
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

func (m *mesh) IndexData() []byte {
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func (m *mesh) IndexCount() int {
	return len(m.indices)
}

func (m *mesh) Color() [4]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.color
}

func (m *mesh) SetColor(rgba [4]float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.color = rgba
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}
