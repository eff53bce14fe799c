// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// MaxMagnitude returns the largest representable magnitude of a signed PCM
// sample at the given bit depth (e.g., 32767 for 16-bit). It returns 0 for
// unsupported depths.
//
// 8-bit WAV audio is stored unsigned with a 128 bias; its magnitude around
// the bias point is 127.
func MaxMagnitude(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 127.0
	case 16:
		return 32767.0
	case 24:
		return 8388607.0
	case 32:
		return 2147483647.0
	default:
		return 0
	}
}

// Clamp limits x to the normalized amplitude range [-1, 1].
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// PCMToFloat converts a raw PCM sample at bitDepth to a normalized float64
// in [-1, 1]. 8-bit samples are expected in the unsigned 0..255 WAV
// representation.
func PCMToFloat(v int, bitDepth int) float64 {
	if bitDepth == 8 {
		return float64(v-128) / 127.0
	}
	return float64(v) / MaxMagnitude(bitDepth)
}

// FloatToPCM converts a normalized float64 sample to a raw PCM integer at
// bitDepth, clamping to [-1, 1] first and rounding half away from zero.
// 8-bit output uses the unsigned 0..255 WAV representation.
func FloatToPCM(x float64, bitDepth int) int {
	x = Clamp(x)
	v := int(math.Round(x * MaxMagnitude(bitDepth)))
	if bitDepth == 8 {
		return v + 128
	}
	return v
}

// Float64ToInt16 converts a normalized sample to 16-bit signed PCM.
// Convenience wrapper around FloatToPCM for the most common depth.
func Float64ToInt16(x float64) int16 {
	return int16(FloatToPCM(x, 16))
}
