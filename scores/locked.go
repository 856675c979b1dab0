// SPDX-License-Identifier: EPL-2.0

package scores

import "sync"

// Locked serializes access to an Accumulator so a frame loop and a reader
// can share it across goroutines.
type Locked struct {
	acc *Accumulator

	mtx *sync.Mutex
}

func NewLocked(acc *Accumulator) *Locked {
	if acc == nil {
		acc = New()
	}

	return &Locked{
		acc: acc,
		mtx: &sync.Mutex{},
	}
}

func (l *Locked) Reset() {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.acc.Reset()
}

func (l *Locked) AccumulateFrame(scores map[string]float64) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.AccumulateFrame(scores)
}

func (l *Locked) Averages() map[string]float64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.Averages()
}

func (l *Locked) FrameCount() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.FrameCount()
}

func (l *Locked) Snapshot() Snapshot {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.Snapshot()
}

func (l *Locked) Top(n int) []Score {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.Top(n)
}

func (l *Locked) Average(label string) (float64, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.Average(label)
}

func (l *Locked) Sums() map[string]float64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.Sums()
}

func (l *Locked) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.acc.Len()
}
