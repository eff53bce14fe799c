package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavnoise/utils"
)

// CollectSamples drains src and returns all interleaved float64 samples.
// bufferSize controls the per-read chunk (e.g., 4096).
func CollectSamples(src Source, bufferSize int) ([]float64, error) {
	var samples []float64
	buf := make([]float64, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}

// CollectPCM drains src and returns all samples quantized to raw PCM
// integers at bitDepth (8, 16, 24 or 32). Out-of-range values are clamped
// during quantization, so the result never wraps around.
func CollectPCM(src Source, bufferSize, bitDepth int) ([]int, error) {
	if utils.MaxMagnitude(bitDepth) == 0 {
		return nil, ErrUnsupportedBitDepth
	}

	var pcm []int
	buf := make([]float64, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			for i := range n {
				pcm = append(pcm, utils.FloatToPCM(buf[i], bitDepth))
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm, nil
}
