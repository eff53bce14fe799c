// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var ErrThresholdOutOfRange = errors.New("threshold must be between 0 and 1")

// SpectralGate removes low-energy frequency content from a single channel.
// It transforms the zero-padded signal, zeroes every bin whose magnitude
// falls below threshold times the largest magnitude, and transforms back.
// The output has the same length as the input.
//
// This is a naive gate: bins are zeroed outright rather than attenuated,
// which can ring around strong partials at high thresholds.
func SpectralGate(x []float64, threshold float64) ([]float64, error) {
	if threshold < 0 || threshold > 1 {
		return nil, ErrThresholdOutOfRange
	}
	if len(x) == 0 {
		return nil, nil
	}

	re, im := FFTReal(x)
	n := len(re)

	maxMag := 0.0
	mags := make([]float64, n)
	for i := 0; i < n; i++ {
		mags[i] = re[i]*re[i] + im[i]*im[i]
		if mags[i] > maxMag {
			maxMag = mags[i]
		}
	}

	// Compare squared magnitudes to skip the square roots.
	cutoff := threshold * threshold * maxMag
	for i := 0; i < n; i++ {
		if mags[i] < cutoff {
			re[i] = 0
			im[i] = 0
		}
	}

	reOut, _ := IFFT(re, im)

	// Drop the zero padding introduced by the forward transform.
	return reOut[:len(x)], nil
}
