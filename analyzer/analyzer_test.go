// SPDX-License-Identifier: EPL-2.0

package analyzer

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audscore/classify"
	"github.com/ik5/audscore/config"
	"github.com/ik5/audscore/internal/audiotest"
	"github.com/ik5/audscore/scores"
)

// loudness scores a frame as "loud" when its peak passes 0.1 and leaves
// quiet frames unlabelled.
var loudness = classify.ClassifierFunc(func(frame []float32) map[string]float64 {
	for _, s := range frame {
		if math.Abs(float64(s)) > 0.1 {
			return map[string]float64{"loud": 1}
		}
	}
	return map[string]float64{}
})

func blockConfig() *config.Root {
	cfg := config.Default()
	cfg.Analysis.FrameSize = 1000
	cfg.Analysis.HopSize = 1000
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Analysis.HopSize = 0

	_, err := New(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunAveragesOverAllFrames(t *testing.T) {
	t.Parallel()

	a, err := New(blockConfig(), WithClassifier(loudness))
	require.NoError(t, err)

	// One second of tone then one second of silence: 16 loud frames, 16
	// quiet frames that carry no label.
	src := audiotest.NewSegmentSource(16000, 16000, 440, 0)

	report, err := a.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 32, report.Frames)
	assert.InDelta(t, 0.5, report.Averages["loud"], 1e-12)
	assert.InDelta(t, 2.0, report.Seconds, 1e-9)
	assert.False(t, src.Closed(), "Run must not close the source")
}

func TestRunBandClassifierSharesSumToOne(t *testing.T) {
	t.Parallel()

	a, err := New(config.Default())
	require.NoError(t, err)

	report, err := a.Run(context.Background(), audiotest.NewSegmentSource(16000, 16000, 120, 3500))
	require.NoError(t, err)

	// (32000-1024)/512 + 1
	assert.Equal(t, 61, report.Frames)

	var sum float64
	for _, avg := range report.Averages {
		sum += avg
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	require.GreaterOrEqual(t, len(report.Top), 2)
	top := []string{report.Top[0].Label, report.Top[1].Label}
	assert.ElementsMatch(t, []string{"bass", "presence"}, top)
	assert.InDelta(t, 0.5, report.Top[0].Average, 0.1)
}

func TestRunResamplesAndDownmixes(t *testing.T) {
	t.Parallel()

	a, err := New(config.Default())
	require.NoError(t, err)

	// One second of stereo 44.1 kHz becomes 16000 mono samples.
	report, err := a.Run(context.Background(), audiotest.NewSineSource(44100, 2, 44100, 1000))
	require.NoError(t, err)

	assert.Equal(t, 30, report.Frames)
	require.NotEmpty(t, report.Top)
	assert.Equal(t, "mid", report.Top[0].Label)
	assert.Greater(t, report.Top[0].Average, 0.9)
}

func TestRunReportsProgress(t *testing.T) {
	t.Parallel()

	cfg := blockConfig()
	cfg.Report.EveryFrames = 10

	var seen []int
	a, err := New(cfg, WithClassifier(loudness), WithReporter(func(r Report) {
		seen = append(seen, r.Frames)
	}))
	require.NoError(t, err)

	_, err = a.Run(context.Background(), audiotest.NewSineSource(16000, 1, 32000, 440))
	require.NoError(t, err)

	assert.Equal(t, []int{10, 20, 30}, seen)
}

func TestRunReportsProgressAcrossFiles(t *testing.T) {
	t.Parallel()

	cfg := blockConfig()
	cfg.Report.EveryFrames = 10

	var seen []int
	a, err := New(cfg, WithClassifier(loudness), WithReporter(func(r Report) {
		seen = append(seen, r.Frames)
	}))
	require.NoError(t, err)

	// Two files of 15 frames each report at the session's 10th, 20th and
	// 30th frame.
	for range 2 {
		_, err = a.Run(context.Background(), audiotest.NewSineSource(16000, 1, 15000, 440))
		require.NoError(t, err)
	}

	assert.Equal(t, []int{10, 20, 30}, seen)
}

func TestRunAccumulatesAcrossCalls(t *testing.T) {
	t.Parallel()

	a, err := New(blockConfig(), WithClassifier(loudness))
	require.NoError(t, err)

	_, err = a.Run(context.Background(), audiotest.NewSineSource(16000, 1, 4000, 440))
	require.NoError(t, err)
	report, err := a.Run(context.Background(), audiotest.NewSilentSource(16000, 1, 4000))
	require.NoError(t, err)

	assert.Equal(t, 8, report.Frames)
	assert.InDelta(t, 0.5, report.Averages["loud"], 1e-12)
}

func TestReset(t *testing.T) {
	t.Parallel()

	a, err := New(blockConfig(), WithClassifier(loudness))
	require.NoError(t, err)

	first := a.SessionID()
	_, err = uuid.Parse(first)
	require.NoError(t, err)

	_, err = a.Run(context.Background(), audiotest.NewSineSource(16000, 1, 4000, 440))
	require.NoError(t, err)

	a.Reset()

	report := a.Snapshot()
	assert.NotEqual(t, first, report.SessionID)
	assert.Zero(t, report.Frames)
	assert.Zero(t, report.Seconds)
	assert.Empty(t, report.Averages)
	assert.Empty(t, report.Top)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	a, err := New(blockConfig(), WithClassifier(loudness))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := a.Run(ctx, audiotest.NewSineSource(16000, 1, 16000, 440))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Frames)
}

func TestRunSourceError(t *testing.T) {
	t.Parallel()

	a, err := New(blockConfig(), WithClassifier(loudness))
	require.NoError(t, err)

	report, err := a.Run(context.Background(), audiotest.NewFailingSource(16000, 1, 3000))
	require.ErrorIs(t, err, audiotest.ErrInjected)
	assert.Equal(t, 3, report.Frames, "frames read before the failure stay accumulated")
}

func TestRunStrictRejectsNaN(t *testing.T) {
	t.Parallel()

	cfg := blockConfig()
	cfg.Analysis.Strict = true

	nan := classify.ClassifierFunc(func([]float32) map[string]float64 {
		return map[string]float64{"broken": math.NaN()}
	})

	a, err := New(cfg, WithClassifier(nan))
	require.NoError(t, err)

	report, err := a.Run(context.Background(), audiotest.NewSineSource(16000, 1, 3000, 440))
	require.Error(t, err)
	assert.True(t, errors.Is(err, scores.ErrInvalidArgument))
	assert.Zero(t, report.Frames)
}

func TestRunLogs(t *testing.T) {
	t.Parallel()

	log, hook := logtest.NewNullLogger()

	a, err := New(blockConfig(), WithClassifier(loudness), WithLogger(log))
	require.NoError(t, err)

	_, err = a.Run(context.Background(), audiotest.NewSineSource(16000, 1, 2000, 440))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "analysis started", entries[0].Message)

	last := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "analysis finished", last.Message)
	assert.Equal(t, 2, last.Data["frames"])
	assert.Equal(t, 2, last.Data["run_frames"])
	assert.Equal(t, a.SessionID(), last.Data["session"])

	_, err = a.Run(context.Background(), audiotest.NewSineSource(16000, 1, 3000, 440))
	require.NoError(t, err)

	last = hook.LastEntry()
	assert.Equal(t, 5, last.Data["frames"], "frames is the session total")
	assert.Equal(t, 3, last.Data["run_frames"])
	assert.InDelta(t, a.Snapshot().Seconds, last.Data["seconds"], 1e-12)
	assert.InDelta(t, 5000.0/16000, last.Data["seconds"], 1e-12)
}
