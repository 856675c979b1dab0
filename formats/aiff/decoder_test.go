// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// mockAiffReader serves integer samples like aiff.Decoder.PCMBuffer.
type mockAiffReader struct {
	data []int
	err  error
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := copy(buf.Data, m.data)
	m.data = m.data[n:]

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("FORM but definitely not an AIFF body"),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bufSize   int
		wantReads int
	}{
		{"exact multiple ends with empty read", 2, 3},
		{"short final read", 3, 2},
		{"one big read", 64, 1},
	}

	in := []int{0, 16384, -16384, -32768}
	want := []float32{0, 0.5, -0.5, -1}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &source{
				dec:        &mockAiffReader{data: append([]int(nil), in...)},
				sampleRate: 44100,
				channels:   1,
				bitDepth:   16,
			}

			var got []float32
			reads := 0
			buf := make([]float32, tt.bufSize)
			for {
				n, err := src.ReadSamples(buf)
				reads++
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(want) {
				t.Fatalf("got %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if math.Abs(float64(got[i]-want[i])) > 1e-6 {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
			if reads != tt.wantReads {
				t.Errorf("reads = %d, want %d", reads, tt.wantReads)
			}

			if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
				t.Errorf("ReadSamples() after EOF = %d, %v; want 0, io.EOF", n, err)
			}
		})
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockAiffReader{err: io.ErrUnexpectedEOF}, channels: 1, bitDepth: 16}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockAiffReader{}, sampleRate: 22050, channels: 2, bitDepth: 16}

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("metadata = %d Hz / %d ch, want 22050 / 2", src.SampleRate(), src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}

	src.ReadSamples(make([]float32, 128))
	if src.BufSize() != 128 {
		t.Errorf("BufSize() after read = %d, want 128", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

// writeAIFF encodes frames of interleaved 16-bit samples with go-audio/aiff
// and returns the file's bytes.
func writeAIFF(t *testing.T, rate, channels int, data []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, rate, 16, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           data,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing encoder: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return raw
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	const rate, channels, frames = 22050, 2, 500

	data := make([]int, frames*channels)
	for i := range data {
		data[i] = (i*37)%65536 - 32768
	}
	raw := writeAIFF(t, rate, channels, data)

	tests := []struct {
		name      string
		bufSize   int
		wantReads int
	}{
		{"short final read", 256, 4},
		{"exact multiple ends with empty read", 250, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// bytes.Buffer is not a ReadSeeker, so Decode buffers it first.
			src, err := (Decoder{}).Decode(bytes.NewBuffer(raw))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			if src.SampleRate() != rate || src.Channels() != channels {
				t.Fatalf("metadata = %d Hz / %d ch, want %d / %d", src.SampleRate(), src.Channels(), rate, channels)
			}

			var got []float32
			reads := 0
			buf := make([]float32, tt.bufSize)
			for {
				n, err := src.ReadSamples(buf)
				reads++
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(data) {
				t.Fatalf("got %d samples, want %d", len(got), len(data))
			}
			for i, v := range data {
				if want := float32(v) / 32768; got[i] != want {
					t.Fatalf("sample %d = %v, want %v", i, got[i], want)
				}
			}
			if reads != tt.wantReads {
				t.Errorf("reads = %d, want %d", reads, tt.wantReads)
			}
		})
	}
}
