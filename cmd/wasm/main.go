//go:build js && wasm

// Package main exports the noise functions to JavaScript as perlin1f,
// perlin2f, perlin3f (single precision) and perlin1d, perlin2d, perlin3d
// (double precision).
//
// Build: GOOS=js GOARCH=wasm go build -o perlin.wasm ./cmd/wasm
package main

import (
	"syscall/js"

	"github.com/pthm-cable/perlin/noise"
)

func arg(args []js.Value, i int) float64 {
	if i >= len(args) {
		return 0
	}
	return args[i].Float()
}

func main() {
	exports := map[string]func(args []js.Value) any{
		"perlin1f": func(a []js.Value) any {
			return float64(noise.Noise1(float32(arg(a, 0))))
		},
		"perlin2f": func(a []js.Value) any {
			return float64(noise.Noise2(float32(arg(a, 0)), float32(arg(a, 1))))
		},
		"perlin3f": func(a []js.Value) any {
			return float64(noise.Noise3(float32(arg(a, 0)), float32(arg(a, 1)), float32(arg(a, 2))))
		},
		"perlin1d": func(a []js.Value) any {
			return noise.Noise1(arg(a, 0))
		},
		"perlin2d": func(a []js.Value) any {
			return noise.Noise2(arg(a, 0), arg(a, 1))
		},
		"perlin3d": func(a []js.Value) any {
			return noise.Noise3(arg(a, 0), arg(a, 1), arg(a, 2))
		},
	}

	global := js.Global()
	for name, fn := range exports {
		global.Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
			return fn(args)
		}))
	}

	// Keep the module alive for callers.
	select {}
}
