package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferTarget selects the indexed binding point a Buffer is bound to.
type BufferTarget uint32

const (
	// BufferStorage is a shader storage buffer (std430, read/write from shaders).
	BufferStorage BufferTarget = gl.SHADER_STORAGE_BUFFER

	// BufferUniform is a uniform buffer (std140, read-only).
	BufferUniform BufferTarget = gl.UNIFORM_BUFFER
)

// String returns the GL name of the target.
func (t BufferTarget) String() string {
	switch t {
	case BufferStorage:
		return "SHADER_STORAGE_BUFFER"
	case BufferUniform:
		return "UNIFORM_BUFFER"
	default:
		return fmt.Sprintf("BufferTarget(%#x)", uint32(t))
	}
}

// BufferUsage is the GL usage hint given when storage is allocated.
type BufferUsage uint32

const (
	UsageStaticDraw  BufferUsage = gl.STATIC_DRAW
	UsageDynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	UsageStreamDraw  BufferUsage = gl.STREAM_DRAW
)

// buffer is the implementation of the Buffer interface.
type buffer struct {
	handle uint32
	target BufferTarget
	usage  BufferUsage
	size   int
}

// Buffer is a GL buffer object bound to an indexed target (SSBO or UBO).
// All methods must be called on the thread owning the GL context.
type Buffer interface {
	// Handle returns the GL buffer name.
	Handle() uint32

	// Target returns the buffer's binding target.
	Target() BufferTarget

	// Size returns the allocated size in bytes.
	Size() int

	// Upload replaces the buffer contents. Storage is reallocated when the size of
	// data differs from the current size, otherwise it is overwritten in place.
	//
	// Parameters:
	//   - data: the new contents
	Upload(data []byte)

	// Update overwrites part of the buffer.
	//
	// Parameters:
	//   - offset: byte offset into the buffer
	//   - data: bytes to write at offset
	//
	// Returns:
	//   - error: an error if the write would run past the end of the buffer
	Update(offset int, data []byte) error

	// BindBase binds the buffer to an indexed binding point of its target,
	// the binding = N of the matching shader block.
	//
	// Parameters:
	//   - binding: the binding index
	BindBase(binding uint32)

	// Delete releases the GL buffer. Safe to call more than once.
	Delete()
}

var _ Buffer = &buffer{}

// NewBuffer creates a buffer on target holding a copy of data.
//
// Parameters:
//   - target: the binding target
//   - data: the initial contents, may be empty
//   - options: functional options to configure the buffer
//
// Returns:
//   - Buffer: the buffer
func NewBuffer(target BufferTarget, data []byte, options ...BufferBuilderOption) Buffer {
	b := &buffer{
		target: target,
		usage:  UsageStaticDraw,
	}
	for _, opt := range options {
		opt(b)
	}

	gl.GenBuffers(1, &b.handle)
	b.Upload(data)
	return b
}

func (b *buffer) Handle() uint32 {
	return b.handle
}

func (b *buffer) Target() BufferTarget {
	return b.target
}

func (b *buffer) Size() int {
	return b.size
}

func (b *buffer) Upload(data []byte) {
	target := uint32(b.target)
	gl.BindBuffer(target, b.handle)
	if len(data) != b.size {
		gl.BufferData(target, len(data), bytesPtr(data), uint32(b.usage))
		b.size = len(data)
	} else if len(data) > 0 {
		gl.BufferSubData(target, 0, len(data), bytesPtr(data))
	}
	gl.BindBuffer(target, 0)
}

func (b *buffer) Update(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > b.size {
		return fmt.Errorf("buffer %d: write of %d bytes at offset %d exceeds size %d", b.handle, len(data), offset, b.size)
	}
	if len(data) == 0 {
		return nil
	}
	target := uint32(b.target)
	gl.BindBuffer(target, b.handle)
	gl.BufferSubData(target, offset, len(data), bytesPtr(data))
	gl.BindBuffer(target, 0)
	return nil
}

func (b *buffer) BindBase(binding uint32) {
	gl.BindBufferBase(uint32(b.target), binding, b.handle)
}

func (b *buffer) Delete() {
	if b.handle == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.handle)
	b.handle = 0
	b.size = 0
}

// bytesPtr returns a pointer to the first byte of data, nil when data is empty.
func bytesPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}
