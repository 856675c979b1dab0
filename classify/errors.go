// SPDX-License-Identifier: EPL-2.0

package classify

import "errors"

var (
	ErrInvalidBand      = errors.New("invalid band")
	ErrNoBands          = errors.New("at least one band is required")
	ErrInvalidFrameSize = errors.New("frame size must be at least 2")
)
