// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package reads and writes uncompressed PCM WAV files at 8, 16, 24
// and 32-bit depths. Decoding is built on the github.com/go-audio library,
// which performs a full RIFF chunk walk, so files with extra chunks
// (LIST, INFO, cue points) decode fine.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float64, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float64
// values in the range [-1.0, 1.0], normalized by the maximum magnitude of
// the source bit depth. Source.BitDepth reports the original encoding so
// callers can write output at a matching depth.
//
// # Writing WAV Files
//
// Use WritePCM to create WAV files at any supported depth:
//
//	pcm := []int{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM(file, 8000, 1, 16, pcm)
//
// WriteWAV16 is a convenience wrapper for the common 16-bit case.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: IEEE float and compressed formats are rejected
//   - ErrUnsupportedBitDepth: Depth is not 8, 16, 24 or 32
//   - ErrNoAudioData: The data chunk is missing or empty
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if err == wav.ErrNotWavFile {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: actual audio samples
//
// 8-bit samples are stored unsigned with a 128 bias; all other depths are
// signed little-endian. WritePCM handles all format details automatically.
package wav
