package renderer

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// DeviceInfo describes the GL implementation behind the current context.
type DeviceInfo struct {
	Vendor   string
	Renderer string
	Version  string

	// MaxStorageBufferBindings is GL_MAX_SHADER_STORAGE_BUFFER_BINDINGS.
	MaxStorageBufferBindings int32

	// MaxStorageBlockSize is GL_MAX_SHADER_STORAGE_BLOCK_SIZE in bytes.
	MaxStorageBlockSize int32
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	info DeviceInfo

	clearColor mgl32.Vec4
	depthTest  bool
	pointSize  float32

	width  int
	height int
}

// Renderer owns the global GL state of a sample: function loading, depth testing,
// the clear color and the viewport. Buffers and framebuffers are created separately
// with NewBuffer and NewFramebuffer once a Renderer exists.
type Renderer interface {
	// Info returns the driver strings and storage buffer limits queried at startup.
	//
	// Returns:
	//   - DeviceInfo: the device information
	Info() DeviceInfo

	// Resize updates the viewport to cover the new framebuffer size.
	//
	// Parameters:
	//   - width: the framebuffer width in pixels
	//   - height: the framebuffer height in pixels
	Resize(width, height int)

	// Size returns the current viewport size.
	Size() (width, height int)

	// SetClearColor changes the color Clear fills with.
	//
	// Parameters:
	//   - color: RGBA in [0, 1]
	SetClearColor(color mgl32.Vec4)

	// Clear clears the color and depth buffers of the bound framebuffer.
	Clear()
}

var _ Renderer = &renderer{}

// NewRenderer loads the GL function pointers for the context current on the calling
// thread and applies the initial state. Must be called after the window's context
// has been made current.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: an error if the GL functions cannot be loaded
func NewRenderer(options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		depthTest: true,
		pointSize: 1,
	}
	for _, opt := range options {
		opt(r)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.info = DeviceInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	gl.GetIntegerv(gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS, &r.info.MaxStorageBufferBindings)
	gl.GetIntegerv(gl.MAX_SHADER_STORAGE_BLOCK_SIZE, &r.info.MaxStorageBlockSize)
	log.Printf("[Renderer] %s | %s | OpenGL %s | SSBO bindings: %d | SSBO block size: %d",
		r.info.Vendor, r.info.Renderer, r.info.Version, r.info.MaxStorageBufferBindings, r.info.MaxStorageBlockSize)

	if r.depthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	gl.PointSize(r.pointSize)
	r.SetClearColor(r.clearColor)
	if r.width > 0 && r.height > 0 {
		r.Resize(r.width, r.height)
	}
	return r, nil
}

func (r *renderer) Info() DeviceInfo {
	return r.info
}

func (r *renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *renderer) SetClearColor(color mgl32.Vec4) {
	r.clearColor = color
	gl.ClearColor(color[0], color[1], color[2], color[3])
}

func (r *renderer) Clear() {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.depthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}
