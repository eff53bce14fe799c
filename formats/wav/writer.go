// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WritePCM writes an uncompressed PCM WAV file with interleaved samples at
// the given bit depth (8, 16, 24 or 32). samples holds raw PCM integers:
// signed for 16/24/32-bit, unsigned 0..255 for 8-bit. The header and the
// sample data are written in chunked batches.
func WritePCM(w io.Writer, sampleRate, channels, bitDepth int, samples []int) error {
	bytesPerSample := 0
	switch bitDepth {
	case 8, 16, 24, 32:
		bytesPerSample = bitDepth / 8
	default:
		return ErrUnsupportedBitDepth
	}

	if channels < 1 {
		channels = 1
	}
	if len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(bitDepth)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bytesPerSample)
	blockAlign := uint16(numChannels) * uint16(bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Convert samples to bytes efficiently
	// For better performance with large files, write in chunks
	const chunkSize = 8192 // samples per write

	bufSize := min(len(samples), chunkSize)
	buf := make([]byte, bufSize*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			off := j * bytesPerSample
			switch bitDepth {
			case 8:
				buf[off] = byte(s)
			case 16:
				binary.LittleEndian.PutUint16(buf[off:off+2], uint16(int16(s)))
			case 24:
				v := uint32(int32(s))
				buf[off] = byte(v)
				buf[off+1] = byte(v >> 8)
				buf[off+2] = byte(v >> 16)
			case 32:
				binary.LittleEndian.PutUint32(buf[off:off+4], uint32(int32(s)))
			}
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteWAV16 writes an interleaved 16-bit PCM WAV at sampleRate. Kept as a
// convenience for the most common output depth.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	pcm := make([]int, len(samples))
	for i, s := range samples {
		pcm[i] = int(s)
	}
	return WritePCM(w, sampleRate, channels, 16, pcm)
}
