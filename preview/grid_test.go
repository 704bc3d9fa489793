package preview

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/perlin/config"
	"github.com/pthm-cable/perlin/noise"
	"github.com/pthm-cable/perlin/render"
)

func testField(t *testing.T) *render.Field {
	t.Helper()
	f, err := render.NewField(nil, []config.LayerConfig{
		{Scale: 16, Weight: 1, TimeSpeed: 0.5},
		{Scale: 8, Weight: 0.5, TimeSpeed: 0.25},
	})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFillMatchesField(t *testing.T) {
	f := testField(t)
	g := NewGrid(32)
	g.Fill(f, -40, 12.5, 2, 3, 1.5)

	for _, c := range [][2]int{{0, 0}, {5, 7}, {31, 0}, {12, 31}, {31, 31}} {
		i, j := c[0], c[1]
		want := f.AtTime(-40+float32(i)*2, 12.5+float32(j)*3, 1.5)
		if got := g.Values[j*32+i]; got != want {
			t.Errorf("cell (%d, %d) = %v, want %v", i, j, got, want)
		}
	}
}

func TestFillAtOriginIsZero(t *testing.T) {
	g := NewGrid(8)
	g.Fill(testField(t), 0, 0, 1, 1, 0)

	if g.Values[0] != 0 {
		t.Errorf("expected lattice origin to be 0, got %v", g.Values[0])
	}
}

func TestFillChangesWithTime(t *testing.T) {
	f := testField(t)
	a, b := NewGrid(16), NewGrid(16)
	a.Fill(f, 0, 0, 3, 3, 0.3)
	b.Fill(f, 0, 0, 3, 3, 2.7)

	diff := 0
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			diff++
		}
	}
	if diff < len(a.Values)/2 {
		t.Errorf("expected most cells to change over time, %d of %d did", diff, len(a.Values))
	}
}

func TestRange(t *testing.T) {
	g := &Grid{Size: 2, Values: []float32{-0.5, 0.25, 0.75, 0.5}}
	lo, hi, mean := g.Range()
	if lo != -0.5 || hi != 0.75 || mean != 0.25 {
		t.Errorf("Range = %v, %v, %v", lo, hi, mean)
	}

	empty := NewGrid(0)
	if lo, hi, mean := empty.Range(); lo != 0 || hi != 0 || mean != 0 {
		t.Error("expected zero range for empty grid")
	}
}

func TestShadeAndRamp(t *testing.T) {
	if got := Shade(0); got != (color.RGBA{R: 127, G: 127, B: 127, A: 255}) {
		t.Errorf("Shade(0) = %v", got)
	}
	if got := Ramp(-1); got != (color.RGBA{R: 10, G: 20, B: 60, A: 255}) {
		t.Errorf("Ramp(-1) = %v", got)
	}
	if got := Ramp(1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Ramp(1) = %v", got)
	}
	if Ramp(-3) != Ramp(-1) || Ramp(3) != Ramp(1) {
		t.Error("expected Ramp to clamp out of range values")
	}
}

func TestColorize(t *testing.T) {
	g := &Grid{Size: 2, Values: []float32{-1, 0, 0.5, 1}}
	dst := make([]color.RGBA, 4)

	g.Colorize(dst, false)
	for i, v := range g.Values {
		if dst[i] != Shade(v) {
			t.Errorf("gray pixel %d = %v, want %v", i, dst[i], Shade(v))
		}
	}

	g.Colorize(dst, true)
	for i, v := range g.Values {
		if dst[i] != Ramp(v) {
			t.Errorf("ramp pixel %d = %v, want %v", i, dst[i], Ramp(v))
		}
	}
}

func TestImageUsesBrightness(t *testing.T) {
	g := NewGrid(16)
	g.Fill(testField(t), 0, 0, 4, 4, 0.8)
	img := g.Image()

	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("expected 16x16 image, got %v", b)
	}
	for j := 0; j < 16; j++ {
		for i := 0; i < 16; i++ {
			if got, want := img.GrayAt(i, j).Y, render.Brightness(g.Values[j*16+i]); got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestProfile(t *testing.T) {
	f, err := render.NewField(nil, []config.LayerConfig{{Scale: 1, Weight: 1}})
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float64, 8)
	Profile(f, dst, 0.25, 0.5)
	for i, got := range dst {
		if want := noise.Noise1(0.25 + float64(i)*0.5); got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
	if dst[0] != 0.3017578125 {
		t.Errorf("unexpected first sample %v", dst[0])
	}
}
