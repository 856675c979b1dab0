// SPDX-License-Identifier: EPL-2.0

package audscore

import (
	"fmt"
	"io"

	"github.com/ik5/audscore/audio"
)

// ResampleToMono drains src through a MonoMixer and, when the rates differ,
// a Resampler, and returns every sample at targetRate. It is the same stream
// the analyzer frames, which makes it handy for checking what the classifier
// actually hears.
func ResampleToMono(src audio.Source, targetRate, bufferSize int) ([]float32, error) {
	if targetRate <= 0 {
		return nil, audio.ErrInvalidSampleRate
	}
	if bufferSize <= 0 {
		return nil, fmt.Errorf("%w: buffer size %d", audio.ErrInvalidDstSize, bufferSize)
	}

	var stream audio.Source = audio.NewMonoMixer(src)
	if src.SampleRate() != targetRate {
		stream = audio.NewResampler(stream, targetRate)
	}

	// Roughly two seconds up front; append grows it from there.
	out := make([]float32, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := stream.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}
}
