package camera

// Input is the polled input state a Controller reads each frame.
// The GLFW window satisfies it; tests supply a fake.
type Input interface {
	// IsKeyPressed reports whether the key with the given GLFW key code is held down.
	IsKeyPressed(key int) bool

	// IsMouseButtonPressed reports whether the given GLFW mouse button is held down.
	IsMouseButtonPressed(button int) bool

	// CursorPosition returns the cursor position in window coordinates, origin top-left.
	CursorPosition() (x, y float64)
}

// Controller is an input-handling collaborator that owns a camera pose.
// Update advances the pose from input, Apply writes it into a Camera.
// Apply only touches the camera when the pose changed since the previous Apply,
// so a still controller leaves the camera clean and its matrices are not re-uploaded.
type Controller interface {
	// Update reads input and advances the controller's pose.
	//
	// Parameters:
	//   - input: the polled input state
	//   - dt: seconds since the previous update
	Update(input Input, dt float32)

	// Apply writes the controller's pose into cam if it changed since the last Apply.
	//
	// Parameters:
	//   - cam: the camera to drive
	//
	// Returns:
	//   - bool: true if the camera was modified
	Apply(cam Camera) bool
}
