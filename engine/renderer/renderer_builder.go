package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// RendererBuilderOption defines a function that modifies the renderer during
// construction.
type RendererBuilderOption func(*renderer)

// WithLogger sets the logger the renderer and its allocator report to.
// Defaults to the package-wide logger.
//
// Parameters:
//   - log: the zap logger to use
//
// Returns:
//   - RendererBuilderOption: the option
func WithLogger(log *zap.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// WithPresentMode sets the surface present mode which controls how frames are
// delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: the option
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		switch mode {
		case PresentModeVSync:
			r.presentMode = wgpu.PresentModeFifo
		case PresentModeUncapped:
			r.presentMode = wgpu.PresentModeImmediate
		}
	}
}

// WithForceFallbackAdapter forces adapter selection to the software fallback,
// useful for machines without a hardware GPU backend.
//
// Parameters:
//   - force: true to require the fallback adapter
//
// Returns:
//   - RendererBuilderOption: the option
func WithForceFallbackAdapter(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
