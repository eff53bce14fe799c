// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the frequency-domain helpers used by the denoiser and
// the analyzer: a radix-2 FFT pair, magnitude spectra and a naive spectral
// gate. Signals are plain []float64 slices in normalized amplitude units;
// inputs are zero padded to power-of-two lengths internally.
package dsp
