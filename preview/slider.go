package preview

import "github.com/pthm-cable/perlin/config"

// Slider ranges in the control panel.
const (
	scaleMin, scaleMax   = 1, 256
	weightMin, weightMax = 0, 2
	speedMin, speedMax   = 0, 2
	seedMin, seedMax     = 0, 99999
)

// sliderEdit reports whether a slider result is a user edit of value.
// raygui clamps the value it is given to [lo, hi] every frame, so an
// untouched slider over an out-of-range value returns the clamped value,
// and that must not be written back.
func sliderEdit(value, got, lo, hi float32) bool {
	return got != clampSlider(value, lo, hi)
}

func clampSlider(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// layerEdit copies the sliders the user moved into l. Untouched settings
// keep their current values even when they lie outside the slider range.
func layerEdit(l config.LayerConfig, scale, weight, speed float32) (config.LayerConfig, bool) {
	changed := false
	if sliderEdit(float32(l.Scale), scale, scaleMin, scaleMax) {
		l.Scale = float64(scale)
		changed = true
	}
	if sliderEdit(float32(l.Weight), weight, weightMin, weightMax) {
		l.Weight = float64(weight)
		changed = true
	}
	if sliderEdit(float32(l.TimeSpeed), speed, speedMin, speedMax) {
		l.TimeSpeed = float64(speed)
		changed = true
	}
	return l, changed
}

// seedEdit returns the seed to use after the seed slider returned got.
func seedEdit(seed int64, got float32) (int64, bool) {
	if !sliderEdit(float32(seed), got, seedMin, seedMax) {
		return seed, false
	}
	return int64(got), true
}
