// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math/rand"
	"time"
)

// Injector adds independent Gaussian noise to every sample of src.
// Works on interleaved samples; preserves channel count, sample rate and
// stream length. Each sample gets an independent draw from N(0, level²) in
// normalized amplitude units, so the transform is elementwise and channel
// agnostic.
//
// The injected values are NOT clamped here; chain a Clipper after the
// Injector to keep the stream inside [-1, 1].
type Injector struct {
	src   Source
	level float64
	rng   *rand.Rand
}

// NewInjector wraps src with additive Gaussian noise at the given standard
// deviation (normalized units). A nil rng gets a time-based seed; pass a
// seeded rand.Rand for byte-deterministic output.
func NewInjector(src Source, level float64, rng *rand.Rand) (*Injector, error) {
	if level < 0 {
		return nil, ErrNegativeNoiseLevel
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Injector{
		src:   src,
		level: level,
		rng:   rng,
	}, nil
}

func (in *Injector) SampleRate() int { return in.src.SampleRate() }
func (in *Injector) Channels() int   { return in.src.Channels() }
func (in *Injector) BitDepth() int   { return in.src.BitDepth() }
func (in *Injector) BufSize() int    { return in.src.BufSize() }

func (in *Injector) Close() error {
	err := in.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples reads from the wrapped source and perturbs every sample.
// A zero noise level is a strict pass-through: no RNG draws are consumed,
// so the same seed produces the same stream regardless of read sizes.
func (in *Injector) ReadSamples(dst []float64) (int, error) {
	n, err := in.src.ReadSamples(dst)
	if in.level == 0 {
		return n, err
	}

	for i := range n {
		dst[i] += in.rng.NormFloat64() * in.level
	}

	return n, err
}
