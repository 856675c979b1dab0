// SPDX-License-Identifier: EPL-2.0

// Package classify turns audio frames into label → score mappings.
//
// A Classifier is called once per analysis frame and returns a fresh map
// that the caller may keep. BandClassifier, the bundled implementation,
// scores each configured frequency band by its share of the frame's
// spectral energy:
//
//	c, err := classify.NewBandClassifier(16000, 1024, classify.DefaultBands(), 1e-3)
//	scores := c.Classify(frame) // e.g. map[bass:0.61 mid:0.27 ...]
//
// Frames quieter than the silence floor produce an empty map: the frame
// still happened, it just carried no label.
package classify
