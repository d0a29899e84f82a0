package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// meshShaderSource is the mesh pipeline's WGSL, completed by prepending the Light struct.
//
//go:embed assets/mesh.wgsl
var meshShaderSource string

// ErrNotUploaded is returned by Draw when a mesh of the object was never passed to Upload.
var ErrNotUploaded = errors.New("renderer: mesh not uploaded")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	meshes map[model.Mesh]*gpuMesh
	light  light.Light

	width, height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           wgpu.Color
}

// Renderer draws the viewed object to the window surface.
//
// The Renderer owns one lit mesh pipeline. Meshes are uploaded once, after which every
// Draw writes the camera, light and per-mesh uniforms and draws the object in a single
// pass over the clear color.
type Renderer interface {
	// Upload creates GPU buffers for every mesh of the object. Meshes already uploaded
	// are skipped.
	//
	// Parameters:
	//   - obj: the object whose meshes to upload
	//
	// Returns:
	//   - error: an error if buffer creation fails
	Upload(obj game_object.GameObject) error

	// Resize reconfigures the surface for a new framebuffer size.
	// A zero dimension is ignored and drawing is suspended until a valid size arrives.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Draw renders one frame: the object as seen from the camera, lit by the renderer's
	// light. A nil object presents just the clear color. Nothing is drawn while the
	// surface size is zero.
	//
	// Parameters:
	//   - cam: the camera providing the view-projection
	//   - obj: the object to draw, or nil
	//
	// Returns:
	//   - error: ErrNotUploaded for meshes missing from Upload, or a frame acquisition error
	Draw(cam camera.Camera, obj game_object.GameObject) error

	// Release frees the GPU resources of every uploaded mesh.
	Release()

	// SetPresentMode sets the surface present mode; it applies on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Light returns the light used for shading.
	Light() light.Light

	// Size returns the surface size last configured.
	Size() (width, height int)
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing to the given window's surface.
// Panics if the GPU adapter, device or mesh pipeline cannot be created.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - window: the window providing the surface descriptor and initial size
//   - options: functional options (present mode, MSAA, clear color, light)
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := newRenderer(backendType, options...)

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if err := r.init(window.Width(), window.Height()); err != nil {
		panic(fmt.Sprintf("failed to initialize renderer: %v", err))
	}
	return r
}

// newRenderer applies defaults and options without creating a backend.
func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		meshes:      make(map[model.Mesh]*gpuMesh),
		clearColor:  wgpu.Color{R: 1, G: 1, B: 1, A: 1},
	}
	for _, opt := range options {
		opt(r)
	}
	if r.light == nil {
		r.light = light.NewLight()
	}
	return r
}

// init pushes pending configuration to the backend, configures the surface and
// registers the mesh pipeline.
func (r *renderer) init(width, height int) error {
	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.SetClearColor(r.clearColor)
	r.Resize(width, height)
	return r.backend.RegisterMeshPipeline(light.GPULightSource + "\n" + meshShaderSource)
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		r.mu.Lock()
		r.width, r.height = 0, 0
		r.mu.Unlock()
		return
	}
	r.backend.ConfigureSurface(width, height)

	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Light() light.Light {
	return r.light
}

func (r *renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) Upload(obj game_object.GameObject) error {
	if obj == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range obj.Meshes() {
		if _, ok := r.meshes[m]; ok {
			continue
		}
		label := m.Name()
		if label == "" {
			label = fmt.Sprintf("mesh %d", i)
		}
		gm, err := r.backend.InitMeshBuffers(label, m.VertexData(), m.IndexData(), m.IndexCount())
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", label, err)
		}
		r.meshes[m] = gm
	}
	return nil
}

func (r *renderer) Draw(cam camera.Camera, obj game_object.GameObject) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.width == 0 || r.height == 0 {
		return nil
	}

	var draws []*gpuMesh
	var uniforms [][]byte
	if obj != nil && obj.Enabled() {
		modelMatrix := obj.ModelMatrix()
		for _, m := range obj.Meshes() {
			gm, ok := r.meshes[m]
			if !ok {
				return fmt.Errorf("%w: %s", ErrNotUploaded, m.Name())
			}
			u := model.GPUMeshUniform{Model: modelMatrix, Color: m.Color()}
			draws = append(draws, gm)
			uniforms = append(uniforms, u.Marshal())
		}
		r.light.SetTarget(obj.Position())
	}

	if cam != nil {
		cu := cam.Uniform()
		lu := r.light.Uniform()
		r.backend.WriteFrameUniforms(cu.Marshal(), lu.Marshal())
	}
	for i, gm := range draws {
		r.backend.WriteMeshUniform(gm, uniforms[i])
	}

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	for _, gm := range draws {
		r.backend.DrawMesh(gm)
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for m, gm := range r.meshes {
		r.backend.ReleaseMesh(gm)
		delete(r.meshes, m)
	}
}
