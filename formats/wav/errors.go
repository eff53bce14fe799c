package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrOnlyPCMSupported    = errors.New("only uncompressed PCM supported")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrNoAudioData         = errors.New("WAV file has no audio data")
	ErrPartialFrame        = errors.New("sample count must be multiple of channels")
)
