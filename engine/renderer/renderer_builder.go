package renderer

import "github.com/go-gl/mathgl/mgl32"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithClearColor sets the initial clear color. Defaults to transparent black.
//
// Parameters:
//   - color: RGBA in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(color mgl32.Vec4) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = color
	}
}

// WithDepthTest enables or disables GL_DEPTH_TEST with GL_LESS. Enabled by default.
// The full-screen path tracing pass runs without it.
//
// Parameters:
//   - enabled: false to leave depth testing off
//
// Returns:
//   - RendererBuilderOption: a function that applies the depth test option to a renderer
func WithDepthTest(enabled bool) RendererBuilderOption {
	return func(r *renderer) {
		r.depthTest = enabled
	}
}

// WithPointSize sets the rasterized size of GL_POINTS. Defaults to 1.
//
// Parameters:
//   - size: the point size in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the point size option to a renderer
func WithPointSize(size float32) RendererBuilderOption {
	return func(r *renderer) {
		r.pointSize = size
	}
}

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width, height: the framebuffer size in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the viewport option to a renderer
func WithViewport(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width = width
		r.height = height
	}
}
