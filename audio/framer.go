// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads Framer tolerates
// before giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// Framer cuts a stream into analysis frames of Size samples whose starts are
// Hop samples apart. Multi-channel sources are mixed down to mono first.
//
// Only full frames are produced: samples left over at the end of the stream
// that do not fill a frame are dropped.
type Framer struct {
	src  Source
	size int
	hop  int

	win     []float32
	filled  int
	started bool
	eof     bool
	done    bool
	frames  int
}

func NewFramer(src Source, size, hop int) (*Framer, error) {
	if size <= 0 || hop <= 0 || hop > size {
		return nil, fmt.Errorf("%w: size=%d hop=%d", ErrInvalidFraming, size, hop)
	}

	if src.Channels() != 1 {
		src = NewMonoMixer(src)
	}

	return &Framer{
		src:  src,
		size: size,
		hop:  hop,
		win:  make([]float32, size),
	}, nil
}

func (f *Framer) Size() int       { return f.size }
func (f *Framer) Hop() int        { return f.hop }
func (f *Framer) SampleRate() int { return f.src.SampleRate() }

// Frames is the number of frames returned so far.
func (f *Framer) Frames() int { return f.frames }

func (f *Framer) Close() error {
	if err := f.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Next returns the next frame. The slice is owned by the Framer and is only
// valid until the following call. io.EOF is returned once no full frame
// remains.
func (f *Framer) Next() ([]float32, error) {
	if f.done {
		return nil, io.EOF
	}

	if f.started {
		copy(f.win, f.win[f.hop:f.filled])
		f.filled -= f.hop
	}

	empty := 0
	for f.filled < f.size {
		if f.eof {
			f.done = true
			return nil, io.EOF
		}

		n, err := f.src.ReadSamples(f.win[f.filled:])
		f.filled += n

		switch {
		case err == io.EOF:
			f.eof = true
		case err != nil:
			return nil, fmt.Errorf("reading source: %w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		default:
			empty = 0
		}
	}

	f.started = true
	f.frames++

	return f.win, nil
}
