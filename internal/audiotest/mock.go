// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by sources built with NewFailingSource.
var ErrInjected = errors.New("injected read failure")

// MockSource generates samples from a waveform function. It satisfies
// audio.Source without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
	failAfter    int
	closed       bool
}

// NewMockSource creates a source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		failAfter:    -1,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewSineSource creates a full-scale sine at frequency Hz on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewToneSource(sampleRate, channels, totalSamples, frequency, 1)
}

// NewToneSource creates a sine at frequency Hz with the given amplitude.
func NewToneSource(sampleRate, channels, totalSamples int, frequency float64, amplitude float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	})
}

// NewSegmentSource plays each tone for segmentSamples frames, one after
// another. A zero frequency segment is silence.
func NewSegmentSource(sampleRate, segmentSamples int, frequencies ...float64) *MockSource {
	return NewMockSource(sampleRate, 1, segmentSamples*len(frequencies), func(sample int, _ int) float32 {
		freq := frequencies[sample/segmentSamples]
		if freq == 0 {
			return 0
		}
		t := float64(sample) / float64(sampleRate)
		return 0.5 * float32(math.Sin(2*math.Pi*freq*t))
	})
}

// NewFailingSource returns a silent source that fails with ErrInjected once
// more than okSamples frames were requested.
func NewFailingSource(sampleRate, channels, okSamples int) *MockSource {
	m := NewSilentSource(sampleRate, channels, okSamples*10)
	m.failAfter = okSamples
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the generator.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrInjected
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.generated)
	}

	for f := range frames {
		idx := m.generated + f
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
