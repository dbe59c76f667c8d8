package renderer

// BufferBuilderOption is a functional option for configuring a Buffer via NewBuffer.
type BufferBuilderOption func(*buffer)

// WithUsage sets the usage hint passed to glBufferData. Defaults to UsageStaticDraw.
//
// Parameters:
//   - usage: the usage hint
//
// Returns:
//   - BufferBuilderOption: option function to apply
func WithUsage(usage BufferUsage) BufferBuilderOption {
	return func(b *buffer) {
		b.usage = usage
	}
}
