// SPDX-License-Identifier: EPL-2.0

package scores

import (
	"fmt"
	"maps"
	"math"
)

// Accumulator tracks per-label score sums and the number of frames seen.
// The zero value is an empty accumulator in permissive mode.
type Accumulator struct {
	sums       map[string]float64
	frameCount int
	strict     bool
}

// Snapshot is a point-in-time copy of an accumulator's averages.
type Snapshot struct {
	Frames   int
	Averages map[string]float64
}

func New(opts ...Option) *Accumulator {
	a := &Accumulator{}
	for _, opt := range opts {
		opt(a)
	}

	if a.sums == nil {
		a.sums = make(map[string]float64)
	}

	return a
}

// Reset discards all history.
func (a *Accumulator) Reset() {
	clear(a.sums)
	a.frameCount = 0
}

// AccumulateFrame adds one frame of scores. The frame count grows by one even
// when scores is empty or nil. Labels missing from scores keep their sums.
//
// Only strict accumulators return an error, and they do so before touching
// any state.
func (a *Accumulator) AccumulateFrame(scores map[string]float64) error {
	if a.strict {
		for label, v := range scores {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %q = %v", ErrInvalidArgument, label, v)
			}
		}
	}

	if a.sums == nil {
		a.sums = make(map[string]float64, len(scores))
	}

	for label, v := range scores {
		a.sums[label] += v
	}
	a.frameCount++

	return nil
}

// Averages returns sum/frameCount for every label submitted since the last
// reset. The map is freshly allocated and empty when no frame was
// accumulated.
func (a *Accumulator) Averages() map[string]float64 {
	out := make(map[string]float64, len(a.sums))
	if a.frameCount == 0 {
		return out
	}

	n := float64(a.frameCount)
	for label, sum := range a.sums {
		out[label] = sum / n
	}

	return out
}

// Average returns the running average of a single label.
func (a *Accumulator) Average(label string) (float64, error) {
	if a.frameCount == 0 {
		return 0, ErrInvalidState
	}

	sum, ok := a.sums[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	return sum / float64(a.frameCount), nil
}

func (a *Accumulator) FrameCount() int { return a.frameCount }

// Len is the number of distinct labels seen since the last reset.
func (a *Accumulator) Len() int { return len(a.sums) }

// Sums returns a copy of the raw per-label sums.
func (a *Accumulator) Sums() map[string]float64 {
	out := make(map[string]float64, len(a.sums))
	maps.Copy(out, a.sums)
	return out
}

func (a *Accumulator) Snapshot() Snapshot {
	return Snapshot{
		Frames:   a.frameCount,
		Averages: a.Averages(),
	}
}
