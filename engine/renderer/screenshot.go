package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

// ErrPixelCount is returned when a pixel buffer does not hold width*height RGBA pixels.
var ErrPixelCount = errors.New("pixel buffer size does not match dimensions")

// ScreenshotQuality is the JPEG quality screenshots are written with.
const ScreenshotQuality = 100

// WriteScreenshot writes RGBA8 pixels read back from GL as <dir>/<name>.png and
// <dir>/<name>.jpg. GL returns the bottom row first, so rows are flipped on write.
// dir is created if it does not exist.
//
// Parameters:
//   - dir: the output directory
//   - name: the file name without extension
//   - pixels: width*height*4 bytes, bottom row first
//   - width, height: the image size in pixels
//
// Returns:
//   - []string: the written file paths, PNG first
//   - error: an error if the buffer size is wrong or a file cannot be written
func WriteScreenshot(dir, name string, pixels []byte, width, height int) ([]string, error) {
	img, err := FlipImage(pixels, width, height)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("screenshot: failed to create %s: %w", dir, err)
	}

	pngPath := filepath.Join(dir, name+".png")
	if err := writeImage(pngPath, func(f *os.File) error { return png.Encode(f, img) }); err != nil {
		return nil, err
	}
	jpgPath := filepath.Join(dir, name+".jpg")
	if err := writeImage(jpgPath, func(f *os.File) error {
		return jpeg.Encode(f, img, &jpeg.Options{Quality: ScreenshotQuality})
	}); err != nil {
		return nil, err
	}
	return []string{pngPath, jpgPath}, nil
}

// FlipImage copies bottom-row-first RGBA8 pixels into a top-row-first image.
//
// Parameters:
//   - pixels: width*height*4 bytes, bottom row first
//   - width, height: the image size in pixels
//
// Returns:
//   - *image.NRGBA: the flipped image
//   - error: ErrPixelCount if the buffer size is wrong
func FlipImage(pixels []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrPixelCount, len(pixels), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := range height {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img, nil
}

func writeImage(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: failed to create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("screenshot: failed to encode %s: %w", path, err)
	}
	return f.Close()
}
