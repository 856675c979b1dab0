// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files through github.com/go-audio/wav.
//
// The decoder accepts integer PCM at 16, 24 or 32 bits with any channel
// count, sample rate and chunk layout (LIST, fact and other chunks before
// the data chunk are skipped). Samples come out as float32 in [-1.0, 1.0):
//
//	f, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// go-audio needs random access; readers that are not an io.ReadSeeker are
// buffered in memory first.
//
// Encode writes 16-bit PCM and is mostly used to produce fixtures:
//
//	out, _ := os.Create("tone.wav")
//	err := wav.Encode(out, 16000, 1, samples)
package wav
