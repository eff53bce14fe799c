// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"
)

func TestCollectSamples_DrainsSource(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 300, 0.25)
	samples, err := CollectSamples(src, 128)

	if err != nil {
		t.Fatalf("CollectSamples() error = %v", err)
	}

	// 300 frames * 2 channels
	if len(samples) != 600 {
		t.Fatalf("len(samples) = %d, want 600", len(samples))
	}

	for i, v := range samples {
		if v != 0.25 {
			t.Fatalf("samples[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestCollectPCM_ScalesTo16Bit(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 1, 3, func(sample int, channel int) float64 {
		return []float64{0.0, 1.0, -1.0}[sample]
	})

	pcm, err := CollectPCM(src, 64, 16)
	if err != nil {
		t.Fatalf("CollectPCM() error = %v", err)
	}

	want := []int{0, 32767, -32767}
	if len(pcm) != len(want) {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), len(want))
	}
	for i := range want {
		if pcm[i] != want[i] {
			t.Errorf("pcm[%d] = %d, want %d", i, pcm[i], want[i])
		}
	}
}

func TestCollectPCM_8BitBias(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 4)

	pcm, err := CollectPCM(src, 64, 8)
	if err != nil {
		t.Fatalf("CollectPCM() error = %v", err)
	}

	// Silence in 8-bit unsigned WAV is 128, not 0.
	for i, v := range pcm {
		if v != 128 {
			t.Errorf("pcm[%d] = %d, want 128", i, v)
		}
	}
}

func TestCollectPCM_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 4)

	_, err := CollectPCM(src, 64, 12)
	if err != ErrUnsupportedBitDepth {
		t.Errorf("CollectPCM() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestCollectPCM_ClampsBeforeQuantizing(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 10, 3.0)

	pcm, err := CollectPCM(src, 64, 16)
	if err != nil {
		t.Fatalf("CollectPCM() error = %v", err)
	}

	for i, v := range pcm {
		if v != 32767 {
			t.Errorf("pcm[%d] = %d, want 32767 (clamped)", i, v)
		}
	}
}
