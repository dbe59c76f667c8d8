package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// ErrFramebufferIncomplete is returned when the driver rejects a framebuffer's attachments.
var ErrFramebufferIncomplete = errors.New("framebuffer incomplete")

// framebuffer is the implementation of the Framebuffer interface.
type framebuffer struct {
	handle        uint32
	colorTextures []uint32
	depthBuffer   uint32

	width  int
	height int

	colorFormat   int32
	attachments   int
	drawBuffers   []uint32
	filterNearest bool
}

// Framebuffer is an offscreen render target with one or more color textures and a
// depth renderbuffer. The samples render into it and blit the result to the window,
// which keeps a readable copy of the last frame for screenshots.
type Framebuffer interface {
	// Handle returns the GL framebuffer name.
	Handle() uint32

	// ColorTexture returns the texture of color attachment i, 0 if out of range.
	ColorTexture(i int) uint32

	// Width returns the attachment width in pixels.
	Width() int

	// Height returns the attachment height in pixels.
	Height() int

	// Bind makes the framebuffer the draw target with every color attachment enabled.
	Bind()

	// Unbind restores the default framebuffer.
	Unbind()

	// Resize reallocates every attachment. A no-op when the size is unchanged.
	//
	// Parameters:
	//   - width, height: the new size in pixels
	//
	// Returns:
	//   - error: ErrFramebufferIncomplete if the driver rejects the new attachments
	Resize(width, height int) error

	// BlitToScreen copies color attachment i to the default framebuffer.
	//
	// Parameters:
	//   - i: the color attachment index
	BlitToScreen(i int)

	// ReadPixels reads color attachment i as tightly packed RGBA8, bottom row first.
	//
	// Parameters:
	//   - i: the color attachment index
	//
	// Returns:
	//   - []byte: width*height*4 bytes, nil if i is out of range
	ReadPixels(i int) []byte

	// Delete releases the framebuffer and its attachments. Safe to call more than once.
	Delete()
}

var _ Framebuffer = &framebuffer{}

// NewFramebuffer creates a framebuffer with RGBA32F color attachments and a depth
// renderbuffer, all sized width x height.
//
// Parameters:
//   - width, height: the attachment size in pixels
//   - options: functional options to configure the framebuffer
//
// Returns:
//   - Framebuffer: the framebuffer
//   - error: ErrFramebufferIncomplete if the driver rejects the attachments
func NewFramebuffer(width, height int, options ...FramebufferBuilderOption) (Framebuffer, error) {
	f := &framebuffer{
		colorFormat:   gl.RGBA32F,
		attachments:   1,
		filterNearest: true,
	}
	for _, opt := range options {
		opt(f)
	}

	f.colorTextures = make([]uint32, f.attachments)
	f.drawBuffers = make([]uint32, f.attachments)
	gl.GenTextures(int32(f.attachments), &f.colorTextures[0])
	gl.GenRenderbuffers(1, &f.depthBuffer)
	gl.GenFramebuffers(1, &f.handle)

	filter := int32(gl.LINEAR)
	if f.filterNearest {
		filter = gl.NEAREST
	}
	for i, tex := range f.colorTextures {
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
		f.drawBuffers[i] = gl.COLOR_ATTACHMENT0 + uint32(i)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := f.allocate(width, height); err != nil {
		f.Delete()
		return nil, err
	}
	return f, nil
}

func (f *framebuffer) Handle() uint32 {
	return f.handle
}

func (f *framebuffer) ColorTexture(i int) uint32 {
	if i < 0 || i >= len(f.colorTextures) {
		return 0
	}
	return f.colorTextures[i]
}

func (f *framebuffer) Width() int {
	return f.width
}

func (f *framebuffer) Height() int {
	return f.height
}

func (f *framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
	gl.DrawBuffers(int32(len(f.drawBuffers)), &f.drawBuffers[0])
}

func (f *framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (f *framebuffer) Resize(width, height int) error {
	if width == f.width && height == f.height {
		return nil
	}
	return f.allocate(width, height)
}

func (f *framebuffer) BlitToScreen(i int) {
	if i < 0 || i >= len(f.colorTextures) {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, f.handle)
	gl.NamedFramebufferReadBuffer(f.handle, f.drawBuffers[i])
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)

	w, h := int32(f.width), int32(f.height)
	gl.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

func (f *framebuffer) ReadPixels(i int) []byte {
	if i < 0 || i >= len(f.colorTextures) || f.width == 0 || f.height == 0 {
		return nil
	}
	pixels := make([]byte, f.width*f.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTextureImage(f.colorTextures[i], 0, gl.RGBA, gl.UNSIGNED_BYTE, int32(len(pixels)), gl.Ptr(pixels))
	return pixels
}

func (f *framebuffer) Delete() {
	if f.handle == 0 {
		return
	}
	gl.DeleteFramebuffers(1, &f.handle)
	gl.DeleteRenderbuffers(1, &f.depthBuffer)
	gl.DeleteTextures(int32(len(f.colorTextures)), &f.colorTextures[0])
	f.handle = 0
	f.depthBuffer = 0
	clear(f.colorTextures)
}

// allocate (re)creates attachment storage and re-attaches it.
func (f *framebuffer) allocate(width, height int) error {
	w, h := int32(max(width, 1)), int32(max(height, 1))

	for _, tex := range f.colorTextures {
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.TexImage2D(gl.TEXTURE_2D, 0, f.colorFormat, w, h, 0, gl.RGBA, gl.FLOAT, nil)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depthBuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT, w, h)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
	for i, tex := range f.colorTextures {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, f.drawBuffers[i], gl.TEXTURE_2D, tex, 0)
	}
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, f.depthBuffer)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%w: status %#x at %dx%d", ErrFramebufferIncomplete, status, w, h)
	}
	f.width, f.height = int(w), int(h)
	return nil
}
