package loader

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

// State is the lifecycle stage of the asset.
type State int

const (
	// StatePending means no load has been started.
	StatePending State = iota

	// StateLoading means the load is running on the worker pool.
	StateLoading

	// StateLoaded means the object is available.
	StateLoaded

	// StateFailed means the load finished with an error.
	StateFailed
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExpectedMeshCount is the number of mesh children the viewed asset must expose.
const ExpectedMeshCount = 2

var (
	// ErrAssetShape is returned when the asset does not expose exactly two mesh children.
	ErrAssetShape = errors.New("loader: asset must have exactly two mesh children")

	// ErrNotLoaded is returned by Result while the asset is pending or loading.
	ErrNotLoaded = errors.New("loader: asset not loaded")

	// ErrLoadStarted is returned when Load is called more than once.
	ErrLoadStarted = errors.New("loader: load already started")

	// ErrClosed is returned when Load is called after Close.
	ErrClosed = errors.New("loader: closed")
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu *sync.Mutex

	pool    worker.DynamicWorkerPool
	workers int

	primaryColor [4]float32
	neutralColor [4]float32
	objectOpts   []game_object.GameObjectBuilderOption

	state  State
	object game_object.GameObject
	err    error
	done   chan struct{}
	closed bool
}

// Loader loads the single viewed asset off the frame loop. "Not loaded yet" is a
// lifecycle state callers poll via State or Done, never an error they must handle.
type Loader interface {
	// Load starts loading the asset from src on the worker pool and returns immediately.
	// Only one load may be started per Loader.
	//
	// Parameters:
	//   - src: the asset source
	//
	// Returns:
	//   - error: ErrLoadStarted or ErrClosed if the load could not be started
	Load(src Source) error

	// State returns the current lifecycle state.
	State() State

	// Object returns the loaded object, or nil unless the state is StateLoaded.
	//
	// Returns:
	//   - game_object.GameObject: the loaded object or nil
	Object() game_object.GameObject

	// Err returns the load error, or nil unless the state is StateFailed.
	Err() error

	// Result returns the loaded object or the reason it is unavailable.
	//
	// Returns:
	//   - game_object.GameObject: the loaded object, or nil
	//   - error: ErrNotLoaded while pending or loading, the load error when failed
	Result() (game_object.GameObject, error)

	// Done returns a channel closed when the load reaches StateLoaded or StateFailed.
	//
	// Returns:
	//   - <-chan struct{}: the completion channel
	Done() <-chan struct{}

	// Close stops the worker pool. A load a worker has already picked up still completes.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a Loader backed by a dynamic worker pool.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided options
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:           &sync.Mutex{},
		workers:      1,
		primaryColor: model.ColorFromHex(PrimaryAccent),
		neutralColor: model.ColorFromHex(NeutralAccent),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(l)
	}

	l.pool = worker.NewDynamicWorkerPool(l.workers, 1, 1*time.Second)
	return l
}

func (l *loader) Load(src Source) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.state != StatePending {
		l.mu.Unlock()
		return ErrLoadStarted
	}
	l.state = StateLoading
	l.mu.Unlock()

	l.pool.SubmitTask(worker.Task{
		ID:      0,
		Payload: src.Name(),
		Do: func() (any, error) {
			obj, err := l.build(src)
			l.finish(src.Name(), obj, err)
			return obj, err
		},
	})
	return nil
}

func (l *loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *loader) Object() game_object.GameObject {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.object
}

func (l *loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *loader) Result() (game_object.GameObject, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch l.state {
	case StateLoaded:
		return l.object, nil
	case StateFailed:
		return nil, l.err
	default:
		return nil, ErrNotLoaded
	}
}

func (l *loader) Done() <-chan struct{} {
	return l.done
}

func (l *loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()
	l.pool.Stop()
}

// build runs the source and turns its meshes into the viewed object.
// A panicking source is reported as a load failure.
func (l *loader) build(src Source) (obj game_object.GameObject, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loader: source %q panicked: %v", src.Name(), r)
		}
	}()

	meshes, err := src.Meshes()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}
	if len(meshes) != ExpectedMeshCount {
		return nil, fmt.Errorf("%s has %d mesh children: %w", src.Name(), len(meshes), ErrAssetShape)
	}

	meshes[0].SetColor(l.primaryColor)
	meshes[1].SetColor(l.neutralColor)

	opts := append([]game_object.GameObjectBuilderOption{game_object.WithMeshes(meshes...)}, l.objectOpts...)
	return game_object.NewGameObject(opts...), nil
}

// finish records the outcome and releases anyone waiting on Done.
func (l *loader) finish(name string, obj game_object.GameObject, err error) {
	l.mu.Lock()
	if err != nil {
		l.state = StateFailed
		l.err = err
	} else {
		l.state = StateLoaded
		l.object = obj
	}
	l.mu.Unlock()

	if err != nil {
		log.Printf("[Loader] %v", err)
	} else {
		log.Printf("[Loader] loaded %q: %d meshes, bounding radius %.4f", name, len(obj.Meshes()), obj.BoundingRadius())
	}
	close(l.done)
}
