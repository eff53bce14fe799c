// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNegativeNoiseLevel  = errors.New("noise level must not be negative")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
