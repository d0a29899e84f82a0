package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGPUTypeSizes(t *testing.T) {
	var v GPUVertex
	var u GPUMeshUniform
	if v.Size() != 24 || len(v.Marshal()) != 24 {
		t.Fatalf("GPUVertex size = %d / %d, want 24", v.Size(), len(v.Marshal()))
	}
	if u.Size() != 80 || len(u.Marshal()) != 80 {
		t.Fatalf("GPUMeshUniform size = %d / %d, want 80", u.Size(), len(u.Marshal()))
	}
}

func TestMeshUniformColorOffset(t *testing.T) {
	u := GPUMeshUniform{Color: [4]float32{0.25, 0.5, 0.75, 1}}
	buf := u.Marshal()
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])); got != 0.5 {
		t.Fatalf("green at offset 68 = %v, want 0.5", got)
	}
}

func TestColorFromHex(t *testing.T) {
	c := ColorFromHex(0xA9273D)
	want := [4]float32{169.0 / 255, 39.0 / 255, 61.0 / 255, 1}
	if c != want {
		t.Fatalf("ColorFromHex = %v, want %v", c, want)
	}
	if ColorFromHex(0xFFFFFF) != [4]float32{1, 1, 1, 1} {
		t.Fatal("white is not opaque white")
	}
}

func TestMeshData(t *testing.T) {
	verts := []GPUVertex{
		{Position: [3]float32{3, 4, 0}},
		{Position: [3]float32{-1, 0, 0}},
		{Position: [3]float32{0, 0, 2}},
	}
	m := NewMesh(WithName("tri"), WithGeometry(verts, []uint32{0, 1, 2}))

	if m.Name() != "tri" || m.IndexCount() != 3 {
		t.Fatalf("name=%q count=%d", m.Name(), m.IndexCount())
	}
	if m.BoundingRadius() != 5 {
		t.Fatalf("bounding radius = %v, want 5", m.BoundingRadius())
	}
	if len(m.VertexData()) != 72 || len(m.IndexData()) != 12 {
		t.Fatalf("data sizes = %d / %d", len(m.VertexData()), len(m.IndexData()))
	}
	if binary.LittleEndian.Uint32(m.IndexData()[8:]) != 2 {
		t.Fatal("index data not little-endian uint32")
	}
	if m.Color() != [4]float32{1, 1, 1, 1} {
		t.Fatalf("default color = %v", m.Color())
	}
	m.SetColor([4]float32{0, 0, 0, 1})
	if m.Color() != [4]float32{0, 0, 0, 1} {
		t.Fatalf("color = %v", m.Color())
	}
}

func TestEmptyMesh(t *testing.T) {
	m := NewMesh()
	if m.VertexData() != nil || len(m.IndexData()) != 0 || m.BoundingRadius() != 0 {
		t.Fatal("empty mesh produced data")
	}
}
