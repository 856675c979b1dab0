// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audscore/internal/pcm"
)

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, input frames
// pass through a one-pole low-pass at the destination Nyquist frequency.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int
	channels int

	// hist[0..3] hold source frames t-1, t, t+1, t+2; real marks frames that
	// came from src rather than edge padding.
	hist   [4][]float32
	real   [4]bool
	primed bool
	// out counts emitted frames; base is the source index held in hist[1].
	out  int64
	base int64

	in    []float32
	inPos int
	inLen int
	eof   bool
	err   error

	lowPass bool
	alpha   float32
	lpState []float32
	lpInit  bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	srcRate := src.SampleRate()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		lpState:  make([]float32, channels),
	}

	if dstRate <= 0 || srcRate <= 0 {
		r.err = ErrInvalidSampleRate
		return r
	}

	r.srcRate = int64(srcRate)
	if srcRate > dstRate {
		r.lowPass = true
		cutoff := float64(dstRate) / 2
		r.alpha = float32(1 - math.Exp(-2*math.Pi*cutoff/float64(srcRate)))
	}

	bufFrames := max(src.BufSize()/max(channels, 1), 256)
	r.in = make([]float32, bufFrames*channels)
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// pull copies the next source frame into frame, reporting false when the
// source is exhausted or failed.
func (r *Resampler) pull(frame []float32) bool {
	for r.inPos >= r.inLen {
		if r.eof || r.err != nil {
			return false
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos = 0
		r.inLen = n - n%r.channels

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			r.err = fmt.Errorf("%w", err)
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowPass {
		if !r.lpInit {
			copy(r.lpState, frame)
			r.lpInit = true
		}
		for c := range frame {
			r.lpState[c] += r.alpha * (frame[c] - r.lpState[c])
			frame[c] = r.lpState[c]
		}
	}

	return true
}

// advance shifts the history window one source frame forward, padding with
// the last real frame once the source runs dry.
func (r *Resampler) advance() {
	last := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	copy(r.real[:], r.real[1:])
	r.hist[3] = last

	if r.pull(r.hist[3]) {
		r.real[3] = true
		return
	}

	copy(r.hist[3], r.hist[2])
	r.real[3] = false
}

func (r *Resampler) prime() bool {
	if !r.pull(r.hist[1]) {
		return false
	}
	r.real[1] = true
	copy(r.hist[0], r.hist[1])

	for i := 2; i < 4; i++ {
		if r.pull(r.hist[i]) {
			r.real[i] = true
			continue
		}
		copy(r.hist[i], r.hist[i-1])
	}

	r.primed = true
	return true
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels <= 0 || len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.err != nil && !r.primed {
		return 0, r.err
	}

	if !r.primed && !r.prime() {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}

	want := len(dst) / r.channels
	written := 0

	dstRate := int64(r.dstRate)
	for written < want {
		target := r.out * r.srcRate
		for r.base < target/dstRate {
			r.advance()
			r.base++
		}

		if !r.real[1] {
			break
		}

		x := float32(target%dstRate) / float32(dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = pcm.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.out++
	}

	if written < want {
		if r.err != nil {
			return written * r.channels, r.err
		}
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}
