package wavnoise

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavnoise/audio"
	"github.com/ik5/wavnoise/dsp"
	"github.com/ik5/wavnoise/formats/wav"
)

// Denoise reads the WAV file at inputPath, applies a per-channel spectral
// gate at the given threshold (a fraction of the strongest frequency
// magnitude, in [0, 1]), and writes the result to outputPath at the input's
// sample rate, channel count and bit depth. Like AddNoise, the output file
// is written atomically.
func Denoise(inputPath, outputPath string, threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return dsp.ErrThresholdOutOfRange
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}
	defer f.Close()

	decoder := wav.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}
	defer src.Close()

	samples, err := audio.CollectSamples(src, DefaultBufferSize)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	channels := src.Channels()
	gated, err := gateChannels(samples, channels, threshold)
	if err != nil {
		return fmt.Errorf("process %s: %w", inputPath, err)
	}

	depth := src.BitDepth()
	sink := audio.NewClipper(newSliceSource(gated, src.SampleRate(), channels, depth))
	pcm, err := audio.CollectPCM(sink, DefaultBufferSize, depth)
	if err != nil {
		return fmt.Errorf("process %s: %w", inputPath, err)
	}

	return writeWAVAtomic(outputPath, src.SampleRate(), channels, depth, pcm)
}

// gateChannels deinterleaves, gates each channel independently, and
// reinterleaves. The FFT needs each channel as a contiguous signal.
func gateChannels(samples []float64, channels int, threshold float64) ([]float64, error) {
	if channels <= 1 {
		return dsp.SpectralGate(samples, threshold)
	}

	frames := len(samples) / channels
	out := make([]float64, len(samples))
	channel := make([]float64, frames)

	for c := 0; c < channels; c++ {
		for f := 0; f < frames; f++ {
			channel[f] = samples[f*channels+c]
		}

		gated, err := dsp.SpectralGate(channel, threshold)
		if err != nil {
			return nil, err
		}

		for f := 0; f < frames; f++ {
			out[f*channels+c] = gated[f]
		}
	}

	return out, nil
}

// sliceSource adapts an in-memory sample slice to audio.Source so the
// collected result can flow through the normal clip+quantize tail of the
// pipeline.
type sliceSource struct {
	samples    []float64
	pos        int
	sampleRate int
	channels   int
	bitDepth   int
}

func newSliceSource(samples []float64, sampleRate, channels, bitDepth int) *sliceSource {
	return &sliceSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *sliceSource) SampleRate() int { return s.sampleRate }
func (s *sliceSource) Channels() int   { return s.channels }
func (s *sliceSource) BitDepth() int   { return s.bitDepth }
func (s *sliceSource) BufSize() int    { return DefaultBufferSize }
func (s *sliceSource) Close() error    { return nil }

func (s *sliceSource) ReadSamples(dst []float64) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}
