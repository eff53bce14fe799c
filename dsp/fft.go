// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// ZeroPad extends x with zeros to the next power-of-two length. Input whose
// length already is a power of two is returned as a copy, unchanged.
// The radix-2 FFT below requires power-of-two input; audio callers truncate
// the padding away after the inverse transform.
func ZeroPad(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	if n&(n-1) == 0 {
		out := make([]float64, n)
		copy(out, x)
		return out
	}

	size := 1
	for size < n {
		size <<= 1
	}

	out := make([]float64, size)
	copy(out, x)
	return out
}

// FFT computes the discrete Fourier transform of the complex sequence
// (re, im) using the radix-2 Cooley-Tukey decimation in time. len(re) must
// equal len(im) and be a power of two.
func FFT(re, im []float64) ([]float64, []float64) {
	n := len(re)
	if n <= 1 {
		reOut := make([]float64, n)
		imOut := make([]float64, n)
		copy(reOut, re)
		copy(imOut, im)
		return reOut, imOut
	}

	half := n / 2
	reEven := make([]float64, 0, half)
	imEven := make([]float64, 0, half)
	reOdd := make([]float64, 0, half)
	imOdd := make([]float64, 0, half)

	for i := 0; i < n; i++ {
		if i%2 == 0 {
			reEven = append(reEven, re[i])
			imEven = append(imEven, im[i])
		} else {
			reOdd = append(reOdd, re[i])
			imOdd = append(imOdd, im[i])
		}
	}

	reEvenFFT, imEvenFFT := FFT(reEven, imEven)
	reOddFFT, imOddFFT := FFT(reOdd, imOdd)

	reOut := make([]float64, n)
	imOut := make([]float64, n)

	for k := 0; k < half; k++ {
		// Twiddle factor e^(-2πik/n) applied to the odd half
		angle := 2 * math.Pi * float64(k) / float64(n)
		cos := math.Cos(angle)
		sin := math.Sin(angle)

		reQ := reOddFFT[k]*cos + imOddFFT[k]*sin
		imQ := -reOddFFT[k]*sin + imOddFFT[k]*cos

		reOut[k] = reEvenFFT[k] + reQ
		reOut[k+half] = reEvenFFT[k] - reQ

		imOut[k] = imEvenFFT[k] + imQ
		imOut[k+half] = imEvenFFT[k] - imQ
	}

	return reOut, imOut
}

// IFFT computes the inverse transform via the conjugation identity:
// conjugate the input, run a forward FFT, conjugate and scale by 1/n.
func IFFT(re, im []float64) ([]float64, []float64) {
	n := len(re)
	if n == 0 {
		return nil, nil
	}

	imConj := make([]float64, n)
	for i, v := range im {
		imConj[i] = -v
	}

	reFFT, imFFT := FFT(re, imConj)

	scale := 1 / float64(n)
	reOut := make([]float64, n)
	imOut := make([]float64, n)
	for i := 0; i < n; i++ {
		reOut[i] = reFFT[i] * scale
		imOut[i] = -imFFT[i] * scale
	}

	return reOut, imOut
}

// FFTReal transforms a real signal, zero padding it to a power of two.
func FFTReal(x []float64) ([]float64, []float64) {
	re := ZeroPad(x)
	im := make([]float64, len(re))
	return FFT(re, im)
}

// Spectrum returns the magnitude of every frequency bin of a real signal.
// The result length is the padded transform size, not len(x).
func Spectrum(x []float64) []float64 {
	re, im := FFTReal(x)

	mags := make([]float64, len(re))
	for i := range re {
		mags[i] = math.Hypot(re[i], im[i])
	}
	return mags
}

// DominantFrequency returns the frequency in Hz with the largest magnitude
// in x, ignoring the DC bin. Resolution is sampleRate divided by the padded
// transform size.
func DominantFrequency(x []float64, sampleRate int) float64 {
	if len(x) == 0 || sampleRate <= 0 {
		return 0
	}

	mags := Spectrum(x)
	n := len(mags)

	// Only the first half carries unique information for real input.
	peak := 1
	for i := 2; i < n/2; i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	return float64(peak) * float64(sampleRate) / float64(n)
}
