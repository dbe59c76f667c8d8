package renderer

// FramebufferBuilderOption is a functional option for configuring a Framebuffer via NewFramebuffer.
type FramebufferBuilderOption func(*framebuffer)

// WithColorAttachments sets the number of color textures. Defaults to 1.
//
// Parameters:
//   - n: the attachment count, minimum 1
//
// Returns:
//   - FramebufferBuilderOption: option function to apply
func WithColorAttachments(n int) FramebufferBuilderOption {
	return func(f *framebuffer) {
		f.attachments = max(n, 1)
	}
}

// WithColorFormat sets the internal format of the color textures. Defaults to gl.RGBA32F.
//
// Parameters:
//   - format: a sized GL internal format such as gl.RGBA8
//
// Returns:
//   - FramebufferBuilderOption: option function to apply
func WithColorFormat(format int32) FramebufferBuilderOption {
	return func(f *framebuffer) {
		f.colorFormat = format
	}
}

// WithLinearFiltering samples the color textures with GL_LINEAR instead of GL_NEAREST.
//
// Returns:
//   - FramebufferBuilderOption: option function to apply
func WithLinearFiltering() FramebufferBuilderOption {
	return func(f *framebuffer) {
		f.filterNearest = false
	}
}
