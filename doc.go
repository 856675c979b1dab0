// SPDX-License-Identifier: EPL-2.0

// Package audscore scores audio by frequency band and reports the average
// share of each band over a listening session.
//
// # Quick Start
//
//	report, err := audscore.ScoreFile(ctx, "song.mp3", config.Default())
//	if err != nil {
//	    return err
//	}
//	for _, s := range report.Top {
//	    fmt.Println(s.Label, s.Average)
//	}
//
// # Pipeline
//
// Every file goes through the same stream:
//
//	decoder -> MonoMixer -> Resampler -> Framer -> Classifier -> Accumulator
//
// The analyzer package runs that loop and keeps the session; the scores
// package holds the running per-label averages: each label's sum is divided
// by the total number of frames since the last reset, including frames that
// did not contain it.
//
// # Formats
//
// formats.NewRegistry knows WAV (16, 24 and 32-bit PCM), MP3, Ogg Vorbis
// and AIFF (16-bit PCM).
package audscore
