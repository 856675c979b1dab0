// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files via github.com/go-audio/aiff.
//
// go-audio needs random access; readers that are not an io.ReadSeeker are
// buffered in memory before decoding.
package aiff
