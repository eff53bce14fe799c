package wavnoise

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ik5/wavnoise/audio"
	"github.com/ik5/wavnoise/formats/wav"
	"github.com/ik5/wavnoise/utils"
)

const (
	// DefaultNoiseLevel is the noise standard deviation used when a Config
	// does not specify one explicitly through DefaultConfig.
	DefaultNoiseLevel = 0.05

	// DefaultBufferSize is the per-read chunk of the processing pipeline.
	DefaultBufferSize = 4096
)

// Config controls a noise-injection run. The zero value is valid and means:
// no noise, random seed, output bit depth matching the input.
type Config struct {
	// NoiseLevel is the standard deviation of the additive Gaussian noise
	// in normalized amplitude units. Must not be negative.
	NoiseLevel float64

	// Seed for the noise generator. Zero picks a time-based seed; any other
	// value makes repeated runs byte identical.
	Seed int64

	// BitDepth of the output PCM encoding. Zero means match the input file.
	// Set 16 explicitly for the legacy always-16-bit behavior.
	BitDepth int

	// BufferSize is the pipeline read size; zero means DefaultBufferSize.
	BufferSize int
}

// DefaultConfig returns the documented defaults: noise level 0.05, random
// seed, output depth matching the input.
func DefaultConfig() Config {
	return Config{
		NoiseLevel: DefaultNoiseLevel,
		BufferSize: DefaultBufferSize,
	}
}

// Validate reports whether cfg describes a runnable transform. It is called
// before any I/O so parameter mistakes never touch the filesystem.
func (c Config) Validate() error {
	if c.NoiseLevel < 0 {
		return audio.ErrNegativeNoiseLevel
	}
	if c.BitDepth != 0 && utils.MaxMagnitude(c.BitDepth) == 0 {
		return audio.ErrUnsupportedBitDepth
	}
	return nil
}

func (c Config) bufferSize() int {
	if c.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return c.BufferSize
}

func (c Config) rng() *rand.Rand {
	if c.Seed == 0 {
		return nil // Injector picks a time-based seed
	}
	return rand.New(rand.NewSource(c.Seed))
}

// InjectPCM runs the noise pipeline over an already-decoded source and
// collects the result as raw PCM integers.
//
// The pipeline is:
//  1. Perturb every sample with Gaussian noise at cfg.NoiseLevel
//  2. Hard-clip to [-1, 1]
//  3. Quantize to the output bit depth
//
// The output depth is cfg.BitDepth, or the source depth when zero; the
// second return value reports which depth was used. Shape is preserved:
// the output has exactly one integer per input sample, channels stay
// interleaved in source order.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm, depth, err := wavnoise.InjectPCM(src, wavnoise.DefaultConfig())
func InjectPCM(src audio.Source, cfg Config) ([]int, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	depth := cfg.BitDepth
	if depth == 0 {
		depth = src.BitDepth()
	}

	injector, err := audio.NewInjector(src, cfg.NoiseLevel, cfg.rng())
	if err != nil {
		return nil, 0, err
	}
	clipper := audio.NewClipper(injector)

	pcm, err := audio.CollectPCM(clipper, cfg.bufferSize(), depth)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return pcm, depth, nil
}

// AddNoise reads the WAV file at inputPath, adds Gaussian noise per cfg,
// and writes the result to outputPath at the same sample rate and channel
// count. outputPath is replaced atomically: the data is written to a
// temporary file in the same directory and renamed into place, so a failed
// run never leaves a partial output file behind.
func AddNoise(inputPath, outputPath string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
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

	pcm, depth, err := InjectPCM(src, cfg)
	if err != nil {
		return fmt.Errorf("process %s: %w", inputPath, err)
	}

	return writeWAVAtomic(outputPath, src.SampleRate(), src.Channels(), depth, pcm)
}

// AddNoiseTo decodes a WAV stream from r, adds Gaussian noise per cfg, and
// encodes the result to w. It is the streaming counterpart of AddNoise with
// no temp-file handling; callers that need atomic file replacement should
// use AddNoise.
func AddNoiseTo(w io.Writer, r io.Reader, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	decoder := wav.Decoder{}
	src, err := decoder.Decode(r)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	defer src.Close()

	pcm, depth, err := InjectPCM(src, cfg)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	if err := wav.WritePCM(w, src.SampleRate(), src.Channels(), depth, pcm); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// writeWAVAtomic encodes pcm to path via a temp file + rename so readers
// never observe a half-written WAV.
func writeWAVAtomic(path string, sampleRate, channels, bitDepth int, pcm []int) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".wavnoise-*.tmp")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if err := wav.WritePCM(tmp, sampleRate, channels, bitDepth, pcm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}
