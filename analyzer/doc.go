// SPDX-License-Identifier: EPL-2.0

// Package analyzer runs the frame loop: it pulls frames from an audio.Source,
// scores them with a classify.Classifier and feeds the scores into a running
// per-label average for the current session.
//
// A session starts when the Analyzer is created and ends on Reset. Several
// Run calls inside one session keep accumulating, which lets a caller treat
// a playlist as one listening session or reset between files.
package analyzer
