// SPDX-License-Identifier: EPL-2.0

package classify

import "fmt"

// Band is a half-open frequency range [Low, High) in Hz.
type Band struct {
	Label string  `yaml:"label" json:"label"`
	Low   float64 `yaml:"low" json:"low"`
	High  float64 `yaml:"high" json:"high"`
}

// DefaultBands splits the audible range into the usual mixing regions.
func DefaultBands() []Band {
	return []Band{
		{Label: "sub", Low: 20, High: 60},
		{Label: "bass", Low: 60, High: 250},
		{Label: "low-mid", Low: 250, High: 500},
		{Label: "mid", Low: 500, High: 2000},
		{Label: "presence", Low: 2000, High: 6000},
		{Label: "brilliance", Low: 6000, High: 20000},
	}
}

// ValidateBands checks labels are present and unique and ranges are sane.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return ErrNoBands
	}

	seen := make(map[string]struct{}, len(bands))
	for i, b := range bands {
		if b.Label == "" {
			return fmt.Errorf("%w: band %d has no label", ErrInvalidBand, i)
		}
		if _, dup := seen[b.Label]; dup {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidBand, b.Label)
		}
		seen[b.Label] = struct{}{}

		if b.Low < 0 || b.High <= b.Low {
			return fmt.Errorf("%w: %q needs 0 <= low < high, got [%v, %v)", ErrInvalidBand, b.Label, b.Low, b.High)
		}
	}

	return nil
}
