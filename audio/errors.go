// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidFraming    = errors.New("frame size and hop must satisfy 0 < hop <= size")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
