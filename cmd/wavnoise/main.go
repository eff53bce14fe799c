// SPDX-License-Identifier: EPL-2.0

// Command wavnoise adds Gaussian white noise to PCM WAV files.
//
// Usage:
//
//	wavnoise [flags] input.wav output.wav
//	wavnoise -analyze input.wav
//
// By default the tool perturbs every sample with zero-mean Gaussian noise
// at the given level and writes the result at the input's sample rate,
// channel count and bit depth. -denoise runs a spectral gate instead, and
// -analyze prints the dominant frequency without writing anything.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wavnoise"
	"github.com/ik5/wavnoise/audio"
	"github.com/ik5/wavnoise/dsp"
	"github.com/ik5/wavnoise/formats/wav"
	"github.com/ik5/wavnoise/internal/config"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("wavnoise", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	noiseLevel := fs.Float64("noise-level", wavnoise.DefaultNoiseLevel,
		"noise standard deviation in normalized amplitude units")
	seed := fs.Int64("seed", 0,
		"noise generator seed; 0 picks a random seed, any other value makes runs reproducible")
	bitDepth := fs.Int("bit-depth", 0,
		"output bit depth (8, 16, 24 or 32); 0 matches the input")
	denoise := fs.Float64("denoise", -1,
		"spectral gate threshold in [0, 1]; runs denoising instead of noise injection")
	analyze := fs.Bool("analyze", false,
		"print the dominant frequency of the input and exit")
	configPath := fs.String("config", "",
		"YAML preset file; explicit flags override preset values")
	verbose := fs.Bool("v", false, "enable debug logging")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wavnoise [flags] input.wav output.wav")
		fmt.Fprintln(fs.Output(), "       wavnoise -analyze input.wav")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	slog.SetDefault(newLogger(*verbose))

	wantArgs := 2
	if *analyze {
		wantArgs = 1
	}
	if fs.NArg() != wantArgs {
		fs.Usage()
		return exitUsage
	}
	input := fs.Arg(0)

	// Registry keyed by file extension; only WAV is registered but the
	// lookup keeps "wrong format" errors ahead of any decode attempt.
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input), "."))
	decoder, ok := reg.Get(ext)
	if !ok {
		fmt.Fprintf(os.Stderr, "wavnoise: unsupported format %q (want .wav)\n", ext)
		return exitUsage
	}

	if *analyze {
		return analyzeFile(decoder, input)
	}
	output := fs.Arg(1)

	if *denoise >= 0 {
		slog.Debug("denoising", "input", input, "output", output, "threshold", *denoise)
		return report("denoise", output, wavnoise.Denoise(input, output, *denoise))
	}

	cfg := wavnoise.DefaultConfig()
	cfg.NoiseLevel = *noiseLevel
	cfg.Seed = *seed
	cfg.BitDepth = *bitDepth

	if *configPath != "" {
		var err error
		cfg, err = applyPreset(cfg, *configPath, fs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wavnoise: %v\n", err)
			return exitUsage
		}
	}

	slog.Debug("injecting noise",
		"input", input,
		"output", output,
		"noise_level", cfg.NoiseLevel,
		"seed", cfg.Seed,
		"bit_depth", cfg.BitDepth,
	)
	return report("inject", output, wavnoise.AddNoise(input, output, cfg))
}

// applyPreset merges preset values under cfg. Flags the user passed
// explicitly keep their command-line value.
func applyPreset(cfg wavnoise.Config, path string, fs *flag.FlagSet) (wavnoise.Config, error) {
	preset, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if preset.NoiseLevel != nil && !set["noise-level"] {
		cfg.NoiseLevel = *preset.NoiseLevel
	}
	if preset.Seed != nil && !set["seed"] {
		cfg.Seed = *preset.Seed
	}
	if preset.BitDepth != nil && !set["bit-depth"] {
		cfg.BitDepth = *preset.BitDepth
	}
	return cfg, nil
}

// analyzeFile prints the dominant frequency of the input's first channel.
func analyzeFile(decoder audio.Decoder, path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wavnoise: decode %s: %v\n", path, err)
		return exitFail
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wavnoise: decode %s: %v\n", path, err)
		return exitFail
	}
	defer src.Close()

	samples, err := audio.CollectSamples(src, wavnoise.DefaultBufferSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wavnoise: decode %s: %v\n", path, err)
		return exitFail
	}

	channels := src.Channels()
	first := make([]float64, 0, len(samples)/channels)
	for i := 0; i < len(samples); i += channels {
		first = append(first, samples[i])
	}

	frames := len(first)
	seconds := float64(frames) / float64(src.SampleRate())

	fmt.Printf("%s: %d Hz, %d channel(s), %d-bit, %.2fs\n",
		path, src.SampleRate(), channels, src.BitDepth(), seconds)
	fmt.Printf("dominant frequency: %.1f Hz\n",
		dsp.DominantFrequency(first, src.SampleRate()))
	return exitOK
}

// report maps an operation error to an exit code: parameter mistakes are
// usage errors, everything else is a processing failure.
func report(stage, output string, err error) int {
	if err == nil {
		slog.Debug("done", "stage", stage, "output", output)
		return exitOK
	}

	fmt.Fprintf(os.Stderr, "wavnoise: %s: %v\n", stage, err)

	switch {
	case errors.Is(err, audio.ErrNegativeNoiseLevel),
		errors.Is(err, audio.ErrUnsupportedBitDepth),
		errors.Is(err, dsp.ErrThresholdOutOfRange):
		return exitUsage
	}
	return exitFail
}

func newLogger(verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
