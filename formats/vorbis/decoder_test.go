// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"
)

// mockOggVorbisReader hands out whole frames like oggvorbis.Reader does.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.samples))
	n -= n % m.channels
	copy(buf, m.samples[:n])
	m.samples = m.samples[n:]

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("OggS but not really a vorbis stream"),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		bufSize  int
	}{
		{"mono", 1, 3},
		{"stereo aligned", 2, 4},
		{"stereo unaligned buffer", 2, 5},
		{"surround", 6, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := make([]float32, tt.channels*5)
			for i := range in {
				in[i] = float32(i) / 100
			}

			s := &source{
				dec:        &mockOggVorbisReader{sampleRate: 48000, channels: tt.channels, samples: slices.Clone(in)},
				sampleRate: 48000,
				channels:   tt.channels,
			}

			var got []float32
			buf := make([]float32, tt.bufSize)
			for {
				n, err := s.ReadSamples(buf)
				if n%tt.channels != 0 {
					t.Fatalf("ReadSamples() returned %d values, not a whole frame", n)
				}
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if !slices.Equal(got, in) {
				t.Errorf("decoded %v, want %v", got, in)
			}
		})
	}
}

func TestSource_BufferSmallerThanFrame(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockOggVorbisReader{channels: 2, samples: []float32{1, 1}}, channels: 2}
	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples() = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockOggVorbisReader{channels: 1, err: io.ErrUnexpectedEOF}, channels: 1}
	if _, err := s.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
