// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams via github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit little-endian stereo, so the returned
// audio.Source reports two channels even for mono files. Mix down with
// audio.NewMonoMixer or let audio.Framer do it.
package mp3
