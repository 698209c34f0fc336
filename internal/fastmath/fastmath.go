// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package fastmath holds float32 approximations used on the sample hot path.
//
// The functions trade precision for small, branch-free code: none of them
// allocate and none of them go through float64.
package fastmath

import "math"

// Pi as a float32.
const Pi = float32(math.Pi)

const (
	signMask = 0x80000000

	// atan2B is the rational approximation coefficient.
	// Method: https://ieeexplore.ieee.org/document/6375931
	atan2B = float32(0.596227)
)

// SqrtApprox approximates the square root of n by halving the biased
// exponent of its IEEE-754 representation.
//
// Relative error is a few percent for n in [1, 1e8] and peaks just above 6%
// near 2*4^k. Negative and subnormal inputs are outside the supported domain
// and return garbage.
//
// Method: https://bits.stephan-brumme.com/squareRoot.html
func SqrtApprox(n float32) float32 {
	bits := math.Float32bits(n)
	bits += 127 << 23
	bits >>= 1
	return math.Float32frombits(bits)
}

// Sqrt is SqrtApprox with an exact zero: SqrtApprox(0) is a tiny positive
// number, which would otherwise leak into distances and deviations.
func Sqrt(n float32) float32 {
	if n == 0 {
		return 0
	}
	return SqrtApprox(n)
}

// Atan2NormApprox approximates the four quadrant arctangent of y/x,
// normalized to [0, 2) where 1 means pi. Maximum error is 0.1620 degrees.
func Atan2NormApprox(y, x float32) float32 {
	xs := math.Float32bits(x) & signMask
	ys := math.Float32bits(y) & signMask

	// quadrant offset: 0, 2 or 4
	q := float32((^xs&ys)>>29 | xs>>30)

	// first quadrant
	bxy := Abs(atan2B * x * y)
	n := bxy + y*y
	atan1q := n / (x*x + bxy + n)

	// move it to the right quadrant
	atan2q := math.Float32frombits((xs ^ ys) | math.Float32bits(atan1q))
	return (q + atan2q) / 2
}

// Atan2Approx approximates the four quadrant arctangent of y/x in radians,
// in the range (-pi, pi].
func Atan2Approx(y, x float32) float32 {
	return RadiansNorm(Atan2NormApprox(y, x))
}

// Abs returns the absolute value of n.
func Abs(n float32) float32 {
	if n < 0 {
		return -n
	}
	return n
}

// RadiansNorm converts an angle normalized to [0, 2) into radians in (-pi, pi].
func RadiansNorm(v float32) float32 {
	if v > 1 {
		v -= 2
	}
	return Pi * v
}
