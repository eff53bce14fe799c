// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks of the noise pipeline:
//   - Source interface for audio input
//   - Injector for additive Gaussian noise
//   - Clipper for hard amplitude limiting
//   - CollectSamples / CollectPCM for draining a pipeline
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Noise Injection
//
// The Injector perturbs every sample with an independent draw from a
// normal distribution:
//
//	rng := rand.New(rand.NewSource(42))
//	noisy, err := audio.NewInjector(source, 0.05, rng)
//
// The noise level is the standard deviation in normalized amplitude units.
// Pass a seeded rand.Rand for reproducible output; pass nil for a
// time-based seed.
//
// # Clipping
//
// The Clipper clamps samples to [-1, 1] so that downstream quantization
// never overflows:
//
//	clipped := audio.NewClipper(noisy)
//
// Chaining Injector and Clipper is the usual arrangement; high noise
// levels push samples outside the valid range and the hard clip brings
// them back at the cost of harmonic distortion.
//
// # Collecting Samples
//
// CollectPCM drains a pipeline into raw PCM integers at a target bit
// depth:
//
//	pcm, err := audio.CollectPCM(clipped, 4096, 16)
//
// # Sample Format
//
// Audio samples travel through pipelines as float64 in the range
// [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// float64 keeps 24-bit and 32-bit PCM round trips bit exact, which float32
// cannot guarantee.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
