// SPDX-License-Identifier: EPL-2.0

// Package scores keeps running per-label averages of frame scores.
//
// An Accumulator receives one label → score mapping per analysis frame and
// keeps only the per-label sums plus the number of frames seen, so averages
// can be read at any time without storing frame history:
//
//	acc := scores.New()
//	acc.AccumulateFrame(map[string]float64{"rock": 0.6, "pop": 0.2})
//	acc.AccumulateFrame(map[string]float64{"rock": 0.4})
//	avg := acc.Averages() // map[pop:0.1 rock:0.5]
//
// # Denominator
//
// Every label is divided by the total number of frames accumulated, not by
// the number of frames that contained it. A label that shows up in one frame
// out of ten has its sum divided by ten.
//
// # Empty State
//
// Before the first frame (or right after Reset) Averages returns an empty
// map rather than NaN values. Average reports ErrInvalidState in that case.
//
// # Non-finite Scores
//
// By default NaN and ±Inf are summed like any other value. Accumulators
// built with WithStrict reject them with ErrInvalidArgument and leave the
// state untouched.
//
// # Concurrency
//
// Accumulator is not safe for concurrent use. Wrap it with NewLocked when
// the frame loop and the reader run on different goroutines.
package scores
