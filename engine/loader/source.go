package loader

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

// Source produces the mesh children of the viewed asset. Sources run on a loader
// worker goroutine and must not touch the window or GPU.
type Source interface {
	// Name identifies the asset in logs and errors.
	//
	// Returns:
	//   - string: the asset name
	Name() string

	// Meshes builds the asset's mesh children in hierarchy order.
	//
	// Returns:
	//   - []model.Mesh: the mesh children
	//   - error: error if the asset cannot be produced
	Meshes() ([]model.Mesh, error)
}

type funcSource struct {
	name string
	fn   func() ([]model.Mesh, error)
}

// NewSource wraps a function as a named Source.
//
// Parameters:
//   - name: the asset name, "unnamed" when empty
//   - fn: function building the mesh children
//
// Returns:
//   - Source: the wrapped source
func NewSource(name string, fn func() ([]model.Mesh, error)) Source {
	return &funcSource{name: common.Coalesce(name, "unnamed"), fn: fn}
}

func (s *funcSource) Name() string {
	return s.name
}

func (s *funcSource) Meshes() ([]model.Mesh, error) {
	return s.fn()
}
