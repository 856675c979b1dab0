// SPDX-License-Identifier: EPL-2.0

package scores

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithStrict makes AccumulateFrame reject NaN and infinite scores.
func WithStrict() Option {
	return func(a *Accumulator) {
		a.strict = true
	}
}

// WithCapacity pre-sizes the label table for an expected number of labels.
func WithCapacity(labels int) Option {
	return func(a *Accumulator) {
		if labels > 0 {
			a.sums = make(map[string]float64, labels)
		}
	}
}
