// SPDX-License-Identifier: EPL-2.0

package scores

import "errors"

var (
	// ErrInvalidState is returned when averages are requested before any frame was accumulated.
	ErrInvalidState = errors.New("no frames accumulated")

	// ErrInvalidArgument is returned by strict accumulators for non-finite scores.
	ErrInvalidArgument = errors.New("score is not a finite number")

	// ErrUnknownLabel is returned when a label was never submitted since the last reset.
	ErrUnknownLabel = errors.New("unknown label")
)
