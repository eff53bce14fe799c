package audio

import (
	"fmt"

	"github.com/ik5/wavnoise/utils"
)

// Clipper hard-limits every sample of src to [-1, 1]. Values outside the
// range become exactly -1 or 1; in-range values pass through untouched.
// This is a hard ceiling/floor, not a soft limiter.
type Clipper struct {
	src Source
}

func NewClipper(src Source) *Clipper {
	return &Clipper{src: src}
}

func (c *Clipper) SampleRate() int { return c.src.SampleRate() }
func (c *Clipper) Channels() int   { return c.src.Channels() }
func (c *Clipper) BitDepth() int   { return c.src.BitDepth() }
func (c *Clipper) BufSize() int    { return c.src.BufSize() }

func (c *Clipper) Close() error {
	err := c.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (c *Clipper) ReadSamples(dst []float64) (int, error) {
	n, err := c.src.ReadSamples(dst)

	for i := range n {
		dst[i] = utils.Clamp(dst[i])
	}

	return n, err
}
