// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between integer PCM and normalized float32 samples.
package pcm

import "encoding/binary"

const (
	int16Scale = 32768.0
	int16Max   = 32767.0
)

// FromInt16LE decodes little-endian 16-bit PCM from src into dst and returns
// the number of samples written. A trailing odd byte is ignored.
func FromInt16LE(dst []float32, src []byte) int {
	n := min(len(src)/2, len(dst))
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(src[2*i:]))
		dst[i] = float32(v) / int16Scale
	}

	return n
}

// FromInt scales integer samples of the given bit depth into [-1, 1).
// Unknown depths are treated as 16-bit.
func FromInt(dst []float32, src []int, bitDepth int) int {
	scale := FullScale(bitDepth)
	n := min(len(src), len(dst))
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}

	return n
}

// FullScale is the magnitude of the most negative sample at bitDepth.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return int16Scale
	}
}

// ToInt16 clamps x to [-1, 1] and scales it to the int16 range.
func ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * int16Max)
}

// CubicInterpolate is a Catmull-Rom spline through y0..y3 evaluated at
// fraction x of the way from y1 to y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
