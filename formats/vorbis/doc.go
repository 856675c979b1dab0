// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams via github.com/jfreymuth/oggvorbis.
//
// oggvorbis already produces interleaved float32 samples, so the source is a
// thin adapter that keeps reads aligned to whole frames.
package vorbis
