package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/pthm-cable/perlin/noise"
)

// ErrUnknownFormat is returned for output paths without a .bmp or .png extension.
var ErrUnknownFormat = errors.New("render: unknown image format")

// Brightness maps a noise value in [-1, 1] to a gray level.
func Brightness[T noise.Float](n T) uint8 {
	v := (float64(n)*0.5 + 0.5) * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Grayscale samples the field at every pixel of a w x h grid.
func Grayscale(f *Field, w, h int, useFloat32 bool) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range row {
			if useFloat32 {
				row[x] = Brightness(f.At32(float32(x), float32(y)))
			} else {
				row[x] = Brightness(f.At(float64(x), float64(y)))
			}
		}
	}
	return img
}

// WriteImage encodes img to path, choosing the codec from the extension.
func WriteImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".bmp" && ext != ".png" {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image: %w", err)
	}

	if ext == ".bmp" {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", ext, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing image: %w", err)
	}
	return nil
}
