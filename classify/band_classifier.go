// SPDX-License-Identifier: EPL-2.0

package classify

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// BandClassifier scores frames by relative band energy. It reuses internal
// buffers and is not safe for concurrent use.
type BandClassifier struct {
	fft        *fourier.FFT
	window     []float64
	sampleRate int
	silenceRMS float64
	bands      []Band
	// binBand maps an FFT bin to its band index, -1 when it belongs to none.
	binBand []int

	seq    []float64
	coeffs []complex128
	energy []float64
}

// NewBandClassifier prepares a classifier for frames of frameSize samples at
// sampleRate. Frames whose RMS is below silenceRMS yield no labels.
func NewBandClassifier(sampleRate, frameSize int, bands []Band, silenceRMS float64) (*BandClassifier, error) {
	if frameSize < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameSize, frameSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if err := ValidateBands(bands); err != nil {
		return nil, err
	}

	c := &BandClassifier{
		fft:        fourier.NewFFT(frameSize),
		window:     hann(frameSize),
		sampleRate: sampleRate,
		silenceRMS: silenceRMS,
		bands:      slices.Clone(bands),
		seq:        make([]float64, frameSize),
		coeffs:     make([]complex128, frameSize/2+1),
		energy:     make([]float64, len(bands)),
	}

	c.binBand = make([]int, len(c.coeffs))
	for i := range c.binBand {
		c.binBand[i] = -1
		freq := c.fft.Freq(i) * float64(sampleRate)
		for b, band := range c.bands {
			if freq >= band.Low && freq < band.High {
				c.binBand[i] = b
				break
			}
		}
	}

	return c, nil
}

func (c *BandClassifier) Bands() []Band { return slices.Clone(c.bands) }

// Classify returns each band's share of the in-band energy. Shares add up to
// 1. Silent frames, frames of the wrong length and frames with no in-band
// energy return an empty map.
func (c *BandClassifier) Classify(frame []float32) map[string]float64 {
	out := make(map[string]float64, len(c.bands))
	if len(frame) != len(c.seq) {
		return out
	}

	var sq float64
	for i, s := range frame {
		v := float64(s)
		sq += v * v
		c.seq[i] = v * c.window[i]
	}
	if math.Sqrt(sq/float64(len(frame))) < c.silenceRMS {
		return out
	}

	c.coeffs = c.fft.Coefficients(c.coeffs, c.seq)

	clear(c.energy)
	for i, coef := range c.coeffs {
		if b := c.binBand[i]; b >= 0 {
			mag := cmplx.Abs(coef)
			c.energy[b] += mag * mag
		}
	}

	total := floats.Sum(c.energy)
	if total == 0 {
		return out
	}

	for b, band := range c.bands {
		out[band.Label] = c.energy[b] / total
	}

	return out
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
