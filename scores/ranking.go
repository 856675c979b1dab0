// SPDX-License-Identifier: EPL-2.0

package scores

import (
	"cmp"
	"slices"
)

// Score is a single label with its running average.
type Score struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

// Top returns up to n labels ordered by average, highest first. Equal
// averages are ordered by label. n <= 0 returns every label.
func (a *Accumulator) Top(n int) []Score {
	return Rank(a.Averages(), n)
}

// Rank orders an averages map the same way Top does.
func Rank(averages map[string]float64, n int) []Score {
	ranked := make([]Score, 0, len(averages))
	for label, avg := range averages {
		ranked = append(ranked, Score{Label: label, Average: avg})
	}

	slices.SortFunc(ranked, func(x, y Score) int {
		if c := cmp.Compare(y.Average, x.Average); c != 0 {
			return c
		}
		return cmp.Compare(x.Label, y.Label)
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}
