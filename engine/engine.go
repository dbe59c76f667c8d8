package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// engine implements the Engine interface.
// Owns the single-threaded frame loop of a sample.
type engine struct {
	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	camera       camera.Camera
	controller   camera.Controller
	cameraBuffer renderer.Buffer

	tickCallback   func(deltaTime float32)
	resizeCallback func(width, height int)

	frameLimit time.Duration // minimum frame duration; 0 = uncapped
	quit       atomic.Bool
}

// Engine runs a sample's frame loop on the thread that owns the GL context.
// Each frame it polls window events, drives the camera from its controller, uploads
// the camera block if the camera changed, calls the tick callback and swaps buffers.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera driven by the engine, nil if none was configured.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Profiler returns the engine's profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler
	Profiler() *profiler.Profiler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called once per frame, after the camera
	// has been updated and before buffers are swapped. Rendering happens here.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetResizeCallback registers the function called when the framebuffer is resized,
	// after the camera's aspect ratio has been updated.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run starts the frame loop. Blocks until the window closes or Quit is called.
	Run()

	// Quit stops the loop after the current frame. Safe to call from any goroutine
	// and more than once.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine around a window.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - w: the window whose context is current on the calling thread
//   - options: functional options for engine configuration (camera, profiling, frame limit)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(w window.Window, options ...EngineBuilderOption) Engine {
	e := &engine{
		window: w,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}

	e.window.SetResizeCallback(e.resize)
	if z, ok := e.controller.(zoomer); ok {
		e.window.SetScrollCallback(z.Zoom)
	}
	return e
}

// zoomer is implemented by controllers that react to the scroll wheel.
type zoomer interface {
	Zoom(delta float32)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

func (e *engine) Run() {
	// Recover from panics inside a frame so the window is still closed cleanly.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame loop recovered from panic: %v", r)
		}
	}()

	previous := e.window.Time()
	for !e.quit.Load() && e.window.PollEvents() {
		frameStart := time.Now()

		current := e.window.Time()
		dt := float32(current - previous)
		previous = current

		e.frame(dt)
		e.window.SwapBuffers()

		if e.profilingEnabled {
			e.profiler.Tick()
		}

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// frame runs one iteration: camera update, conditional camera upload, tick.
func (e *engine) frame(dt float32) {
	if e.camera != nil {
		if e.controller != nil {
			e.controller.Update(e.window, dt)
			e.controller.Apply(e.camera)
		}

		// Only the matrices of a camera that changed since the last frame are re-uploaded.
		dirty := e.camera.IsDirty()
		if dirty && e.cameraBuffer != nil {
			u := e.camera.Uniform()
			e.cameraBuffer.Upload(u.Marshal())
		}
		e.profiler.RecordUpload(dirty)
	}

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
}

// resize keeps the camera aspect ratio in step with the framebuffer.
func (e *engine) resize(width, height int) {
	if e.camera != nil {
		e.camera.SetViewportSize(width, height)
	}
	if e.resizeCallback != nil {
		e.resizeCallback(width, height)
	}
}
