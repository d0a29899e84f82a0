package loader

import (
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

const (
	// PrimaryAccent is the color of the asset's first mesh child.
	PrimaryAccent uint32 = 0xA9273D

	// NeutralAccent is the color of the asset's second mesh child.
	NeutralAccent uint32 = 0x808184
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithAccentColors is an option builder that overrides the colors assigned to the
// first and second mesh children.
//
// Parameters:
//   - primary: 0xRRGGBB color of the first child
//   - neutral: 0xRRGGBB color of the second child
//
// Returns:
//   - LoaderBuilderOption: a function that applies the colors to a loader
func WithAccentColors(primary, neutral uint32) LoaderBuilderOption {
	return func(l *loader) {
		l.primaryColor = model.ColorFromHex(primary)
		l.neutralColor = model.ColorFromHex(neutral)
	}
}

// WithWorkers is an option builder that sets the worker pool size.
//
// Parameters:
//   - n: number of pool workers, values below 1 keep the default of 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithObjectOptions is an option builder that passes extra options to the GameObject
// created for the loaded asset.
//
// Parameters:
//   - opts: options applied after the mesh children are set
//
// Returns:
//   - LoaderBuilderOption: a function that applies the object options to a loader
func WithObjectOptions(opts ...game_object.GameObjectBuilderOption) LoaderBuilderOption {
	return func(l *loader) {
		l.objectOpts = append(l.objectOpts, opts...)
	}
}
