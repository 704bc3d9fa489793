package preview

import (
	"image"
	"image/color"

	"github.com/pthm-cable/perlin/render"
)

// Grid holds one frame of field values, row-major, Size x Size.
type Grid struct {
	Size   int
	Values []float32
}

// NewGrid allocates a square grid.
func NewGrid(size int) *Grid {
	return &Grid{Size: size, Values: make([]float32, size*size)}
}

// Fill samples the animated field at time t. Grid cell (i, j) maps to field
// pixel (ox + i*sx, oy + j*sy).
func (g *Grid) Fill(f *render.Field, ox, oy, sx, sy, t float32) {
	for j := 0; j < g.Size; j++ {
		y := oy + float32(j)*sy
		row := g.Values[j*g.Size : (j+1)*g.Size]
		for i := range row {
			row[i] = f.AtTime(ox+float32(i)*sx, y, t)
		}
	}
}

// Range returns the minimum, maximum and mean of the grid.
func (g *Grid) Range() (lo, hi, mean float32) {
	if len(g.Values) == 0 {
		return 0, 0, 0
	}
	lo, hi = g.Values[0], g.Values[0]
	var sum float64
	for _, v := range g.Values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += float64(v)
	}
	return lo, hi, float32(sum / float64(len(g.Values)))
}

// Colorize writes one colour per grid value into dst.
func (g *Grid) Colorize(dst []color.RGBA, ramp bool) {
	for i, v := range g.Values {
		if ramp {
			dst[i] = Ramp(v)
		} else {
			dst[i] = Shade(v)
		}
	}
}

// Image returns the grid as a grayscale image using the still image mapping.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Size, g.Size))
	for j := 0; j < g.Size; j++ {
		for i := 0; i < g.Size; i++ {
			img.Pix[j*img.Stride+i] = render.Brightness(g.Values[j*g.Size+i])
		}
	}
	return img
}

// Shade maps a noise value to an opaque gray.
func Shade(n float32) color.RGBA {
	b := render.Brightness(n)
	return color.RGBA{R: b, G: b, B: b, A: 255}
}

// Ramp maps a noise value onto a dark blue, cyan, yellow, white gradient.
func Ramp(n float32) color.RGBA {
	v := n*0.5 + 0.5
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	var r, g, b uint8
	switch {
	case v < 0.25:
		t := v / 0.25
		r = uint8(10 + t*30)
		g = uint8(20 + t*60)
		b = uint8(60 + t*100)
	case v < 0.5:
		t := (v - 0.25) / 0.25
		r = uint8(40 + t*20)
		g = uint8(80 + t*120)
		b = uint8(160 + t*40)
	case v < 0.75:
		t := (v - 0.5) / 0.25
		r = uint8(60 + t*140)
		g = uint8(200 - t*40)
		b = uint8(200 - t*150)
	default:
		t := (v - 0.75) / 0.25
		r = uint8(200 + t*55)
		g = uint8(160 + t*95)
		b = uint8(50 + t*205)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Profile fills dst with the 1D field sampled every step pixels from x0.
func Profile(f *render.Field, dst []float64, x0, step float64) {
	for i := range dst {
		dst[i] = f.Line(x0 + float64(i)*step)
	}
}
