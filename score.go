// SPDX-License-Identifier: EPL-2.0

package audscore

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audscore/analyzer"
	"github.com/ik5/audscore/audio"
	"github.com/ik5/audscore/config"
	"github.com/ik5/audscore/formats"
)

// ScoreFile decodes path, picking the decoder from its extension, and scores
// it in a fresh session.
func ScoreFile(ctx context.Context, path string, cfg *config.Root, opts ...analyzer.Option) (analyzer.Report, error) {
	dec, err := formats.NewRegistry().ForPath(path)
	if err != nil {
		return analyzer.Report{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return analyzer.Report{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return score(ctx, dec, f, cfg, opts)
}

// ScoreReader scores r as the given format ("wav", "mp3", ...).
func ScoreReader(ctx context.Context, r io.Reader, format string, cfg *config.Root, opts ...analyzer.Option) (analyzer.Report, error) {
	dec, ok := formats.NewRegistry().Get(format)
	if !ok {
		return analyzer.Report{}, fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, format)
	}

	return score(ctx, dec, r, cfg, opts)
}

func score(ctx context.Context, dec audio.Decoder, r io.Reader, cfg *config.Root, opts []analyzer.Option) (analyzer.Report, error) {
	a, err := analyzer.New(cfg, opts...)
	if err != nil {
		return analyzer.Report{}, err
	}

	src, err := dec.Decode(r)
	if err != nil {
		return analyzer.Report{}, fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	return a.Run(ctx, src)
}
