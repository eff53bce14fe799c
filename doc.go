// SPDX-License-Identifier: EPL-2.0

// Package wavnoise adds Gaussian white noise to PCM WAV files.
//
// The package decodes a WAV file, normalizes the samples to [-1, 1],
// perturbs every sample with zero-mean Gaussian noise, hard-clips the
// result back into range and re-encodes it. Sample rate, channel count
// and sample count are always preserved.
//
// # Quick Start
//
// The simplest way to process a file is AddNoise with the defaults:
//
//	cfg := wavnoise.DefaultConfig() // noise level 0.05, random seed
//	err := wavnoise.AddNoise("clean.wav", "noisy.wav", cfg)
//
// The output file is replaced atomically: a failed run never leaves a
// partial WAV behind.
//
// # Configuration
//
// Config controls the transform:
//
//	cfg := wavnoise.Config{
//		NoiseLevel: 0.02, // std dev in normalized amplitude units
//		Seed:       42,   // non-zero makes runs byte identical
//		BitDepth:   16,   // 0 means match the input depth
//	}
//
// # Audio Processing Pipeline
//
// For more control, build the pipeline from the audio subpackage. Every
// stage wraps an audio.Source and is itself a Source:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//
//	injector, _ := audio.NewInjector(src, 0.05, nil)
//	clipper := audio.NewClipper(injector)
//
//	buf := make([]float64, 4096)
//	n, err := clipper.ReadSamples(buf)
//
// InjectPCM runs the same pipeline over an already-decoded source and
// collects the result as raw PCM integers.
//
// # Denoising
//
// Denoise applies a per-channel spectral gate built on the dsp
// subpackage, zeroing every frequency bin below a fraction of the
// strongest one:
//
//	err := wavnoise.Denoise("noisy.wav", "clean.wav", 0.1)
//
// # Supported Input
//
// Only uncompressed PCM WAV at 8, 16, 24 or 32 bits per sample is
// supported. IEEE float and compressed WAV files are rejected with
// wav.ErrOnlyPCMSupported.
package wavnoise
