// SPDX-License-Identifier: EPL-2.0

package analyzer

import "github.com/ik5/audscore/scores"

// Report is a snapshot of the session's running averages.
type Report struct {
	SessionID string             `json:"session_id"`
	Frames    int                `json:"frames"`
	Seconds   float64            `json:"seconds"`
	Averages  map[string]float64 `json:"averages"`
	Top       []scores.Score     `json:"top"`
}

// Reporter receives periodic reports while Run is in progress.
type Reporter func(Report)
