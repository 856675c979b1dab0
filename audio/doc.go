// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that feed frame analysis.
//
// Everything is built around the Source interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples returns
// io.EOF once the stream is finished, possibly together with a final batch
// of samples.
//
// # Processing Chain
//
// A decoded file is typically mixed down, resampled to the analysis rate and
// cut into overlapping frames:
//
//	mono := audio.NewMonoMixer(src)
//	res := audio.NewResampler(mono, 16000)
//	framer, err := audio.NewFramer(res, 1024, 512)
//	for {
//	    frame, err := framer.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // score frame
//	}
//
// The Resampler uses Catmull-Rom interpolation and computes source positions
// with integer arithmetic, so N input frames at rate A always give
// ceil(N*B/A) output frames at rate B.
//
// # Format Registry
//
// Registry maps format keys to decoders and resolves files by extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("take1.WAV")
//
// See package formats for a registry with every bundled decoder.
package audio
