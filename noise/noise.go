// Package noise evaluates Ken Perlin's Improved Noise in one, two and three
// dimensions.
//
// Every function is pure: the only shared state is a read-only permutation
// table, so calls are safe from any number of goroutines. Results lie roughly
// in [-1, 1] but are not clamped.
//
// Inputs must be finite. NaN and infinities give undefined results, as do
// coordinates whose floor does not fit in an int.
package noise

import "math"

// Float is the precision a call is evaluated in.
type Float interface {
	~float32 | ~float64
}

// Noise1 returns 1D noise at x using the reference table.
func Noise1[T Float](x T) T {
	return Eval1(&reference, x)
}

// Noise2 returns 2D noise at (x, y) using the reference table.
func Noise2[T Float](x, y T) T {
	return Eval2(&reference, x, y)
}

// Noise3 returns 3D noise at (x, y, z) using the reference table.
func Noise3[T Float](x, y, z T) T {
	return Eval3(&reference, x, y, z)
}

// Eval1 returns 1D noise at x using table p.
func Eval1[T Float](p *Table, x T) T {
	xi := floor(x)
	xf := x - T(xi)
	xi &= 0xFF

	u := fade(xf)

	h0 := p[xi]
	h1 := p[xi+1]

	return lerp(grad1(h0, xf), grad1(h1, xf-1), u)
}

// Eval2 returns 2D noise at (x, y) using table p.
func Eval2[T Float](p *Table, x, y T) T {
	xi := floor(x)
	yi := floor(y)
	xf := x - T(xi)
	yf := y - T(yi)
	xi &= 0xFF
	yi &= 0xFF

	u := fade(xf)
	v := fade(yf)

	a := int(p[xi])
	b := int(p[xi+1])
	h00 := p[a+yi]
	h01 := p[a+yi+1]
	h10 := p[b+yi]
	h11 := p[b+yi+1]

	x1 := lerp(grad2(h00, xf, yf), grad2(h10, xf-1, yf), u)
	x2 := lerp(grad2(h01, xf, yf-1), grad2(h11, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

// Eval3 returns 3D noise at (x, y, z) using table p.
func Eval3[T Float](p *Table, x, y, z T) T {
	xi := floor(x)
	yi := floor(y)
	zi := floor(z)
	xf := x - T(xi)
	yf := y - T(yi)
	zf := z - T(zi)
	xi &= 0xFF
	yi &= 0xFF
	zi &= 0xFF

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	// Hash the eight cube corners
	a := int(p[xi]) + yi
	b := int(p[xi+1]) + yi
	aa := int(p[a]) + zi
	ab := int(p[a+1]) + zi
	ba := int(p[b]) + zi
	bb := int(p[b+1]) + zi

	x1 := lerp(grad3(p[aa], xf, yf, zf), grad3(p[ba], xf-1, yf, zf), u)
	x2 := lerp(grad3(p[ab], xf, yf-1, zf), grad3(p[bb], xf-1, yf-1, zf), u)
	y1 := lerp(x1, x2, v)

	x1 = lerp(grad3(p[aa+1], xf, yf, zf-1), grad3(p[ba+1], xf-1, yf, zf-1), u)
	x2 = lerp(grad3(p[ab+1], xf, yf-1, zf-1), grad3(p[bb+1], xf-1, yf-1, zf-1), u)
	y2 := lerp(x1, x2, v)

	return lerp(y1, y2, w)
}

// floor rounds toward negative infinity. Widening a float32 to float64 is
// exact, so one path serves both precisions.
func floor[T Float](x T) int {
	return int(math.Floor(float64(x)))
}

// fade is 6t^5 - 15t^4 + 10t^3.
// The explicit conversions stop the compiler from fusing multiply-adds,
// which would change results on some architectures.
func fade[T Float](t T) T {
	a := T(t*6) - 15
	b := T(t*a) + 10
	return t * t * t * b
}

func lerp[T Float](a, b, t T) T {
	return a + T(t*(b-a))
}
