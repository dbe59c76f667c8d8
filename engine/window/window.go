package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
)

// Window provides platform windowing, an OpenGL context and input state.
// Input is available both as callbacks and as polled state, the latter satisfying
// camera.Input so controllers can read it directly.
type Window interface {
	camera.Input

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the GLFW key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the GLFW key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseDownCallback sets the callback for mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the GLFW button and the cursor x, y position
	SetMouseDownCallback(callback func(button int, x, y int32))

	// SetMouseUpCallback sets the callback for mouse button releases.
	//
	// Parameters:
	//   - callback: function receiving the GLFW button and the cursor x, y position
	SetMouseUpCallback(callback func(button int, x, y int32))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetMouseMoveCallback(callback func(x, y int32))

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// PollEvents processes pending window events without blocking. Callbacks run on
	// the calling thread.
	//
	// Returns:
	//   - bool: false once the window should close
	PollEvents() bool

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback and swaps buffers each iteration.
	ProcessMessages()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Time returns the seconds elapsed since the window was created.
	//
	// Returns:
	//   - float64: the time in seconds
	Time() float64

	// SetTitle changes the title bar text.
	//
	// Parameters:
	//   - title: the window title
	SetTitle(title string)

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// minWidth and minHeight bound the size during resize. 0 leaves a dimension unbounded.
	minWidth  int
	minHeight int

	// maxWidth and maxHeight bound the size during resize. 0 leaves a dimension unbounded.
	maxWidth  int
	maxHeight int

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// contextMajor and contextMinor are the requested OpenGL core profile version.
	contextMajor int
	contextMinor int

	// samples is the default framebuffer MSAA sample count.
	samples int

	// vsync sets the swap interval to 1 when true, 0 otherwise.
	vsync bool

	// closeOnEscape closes the window when Escape is pressed.
	closeOnEscape bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(delta float32)
	onKeyDown   func(keyCode uint32)
	onKeyUp     func(keyCode uint32)
	onMouseDown func(button int, x, y int32)
	onMouseUp   func(button int, x, y int32)
	onMouseMove func(x, y int32)
}

var _ Window = &engineWindow{}

// NewWindow creates a GLFW window with an OpenGL core profile context and makes the
// context current on the calling thread, which is locked to its OS thread.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the window, with its context current
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:         "oxy-gl",
		width:         1280,
		height:        720,
		contextMajor:  4,
		contextMinor:  6,
		samples:       1,
		vsync:         true,
		closeOnEscape: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseDownCallback(callback func(button int, x, y int32)) {
	w.onMouseDown = callback
}

func (w *engineWindow) SetMouseUpCallback(callback func(button int, x, y int32)) {
	w.onMouseUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.onMouseMove = callback
}

func (w *engineWindow) IsKeyPressed(key int) bool {
	return platformIsKeyPressed(w, key)
}

func (w *engineWindow) IsMouseButtonPressed(button int) bool {
	return platformIsMouseButtonPressed(w, button)
}

func (w *engineWindow) CursorPosition() (float64, float64) {
	return platformCursorPosition(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		platformSwapBuffers(w)
		runtime.Gosched()
	}
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) Time() float64 {
	return platformTime()
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
