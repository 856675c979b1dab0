// SPDX-License-Identifier: EPL-2.0

package analyzer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audscore/audio"
	"github.com/ik5/audscore/classify"
	"github.com/ik5/audscore/config"
	"github.com/ik5/audscore/scores"
)

type Analyzer struct {
	cfg        config.Analysis
	top        int
	every      int
	classifier classify.Classifier
	reporter   Reporter
	log        logrus.FieldLogger

	acc *scores.Locked

	mtx     *sync.Mutex
	session uuid.UUID
}

func New(cfg *config.Root, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		cfg:     cfg.Analysis,
		top:     cfg.Report.Top,
		every:   cfg.Report.EveryFrames,
		mtx:     &sync.Mutex{},
		session: uuid.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.classifier == nil {
		bc, err := classify.NewBandClassifier(a.cfg.SampleRate, a.cfg.FrameSize, cfg.Bands, a.cfg.SilenceRMS)
		if err != nil {
			return nil, fmt.Errorf("building band classifier: %w", err)
		}
		a.classifier = bc
	}

	if a.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		a.log = l
	}

	accOpts := []scores.Option{scores.WithCapacity(len(cfg.Bands))}
	if a.cfg.Strict {
		accOpts = append(accOpts, scores.WithStrict())
	}
	a.acc = scores.NewLocked(scores.New(accOpts...))

	return a, nil
}

// SessionID identifies the current accumulation window.
func (a *Analyzer) SessionID() string {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	return a.session.String()
}

// Reset discards the running averages and starts a new session.
func (a *Analyzer) Reset() {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	prev := a.session
	a.acc.Reset()
	a.session = uuid.New()

	a.log.WithFields(logrus.Fields{
		"previous": prev.String(),
		"session":  a.session.String(),
	}).Debug("session reset")
}

// Snapshot may be called from any goroutine, including while Run is active.
func (a *Analyzer) Snapshot() Report {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	snap := a.acc.Snapshot()

	return Report{
		SessionID: a.session.String(),
		Frames:    snap.Frames,
		Seconds:   a.coveredSeconds(snap.Frames),
		Averages:  snap.Averages,
		Top:       scores.Rank(snap.Averages, a.top),
	}
}

// coveredSeconds is the span of audio the first n frames cover.
func (a *Analyzer) coveredSeconds(n int) float64 {
	if n == 0 {
		return 0
	}

	samples := (n-1)*a.cfg.HopSize + a.cfg.FrameSize
	return float64(samples) / float64(a.cfg.SampleRate)
}

// Run scores every frame of src into the current session and returns the
// session report once src is exhausted. src is not closed.
func (a *Analyzer) Run(ctx context.Context, src audio.Source) (Report, error) {
	stream := src
	if stream.Channels() != 1 {
		stream = audio.NewMonoMixer(stream)
	}
	if stream.SampleRate() != a.cfg.SampleRate {
		stream = audio.NewResampler(stream, a.cfg.SampleRate)
	}

	framer, err := audio.NewFramer(stream, a.cfg.FrameSize, a.cfg.HopSize)
	if err != nil {
		return Report{}, fmt.Errorf("framing source: %w", err)
	}

	log := a.log.WithFields(logrus.Fields{
		"session":     a.SessionID(),
		"source_rate": src.SampleRate(),
		"channels":    src.Channels(),
	})
	log.Info("analysis started")

	for {
		if err := ctx.Err(); err != nil {
			return a.Snapshot(), fmt.Errorf("analysis interrupted after %d frames: %w", framer.Frames(), err)
		}

		frame, err := framer.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return a.Snapshot(), fmt.Errorf("reading frame %d: %w", framer.Frames()+1, err)
		}

		if err := a.acc.AccumulateFrame(a.classifier.Classify(frame)); err != nil {
			return a.Snapshot(), fmt.Errorf("frame %d: %w", framer.Frames(), err)
		}

		// Cadence follows the session total, not this run's frames.
		if a.every > 0 && a.acc.FrameCount()%a.every == 0 {
			report := a.Snapshot()
			log.WithFields(logrus.Fields{
				"frames":  report.Frames,
				"seconds": report.Seconds,
			}).Debug("progress")
			if a.reporter != nil {
				a.reporter(report)
			}
		}
	}

	report := a.Snapshot()
	log.WithFields(logrus.Fields{
		"frames":     report.Frames,
		"seconds":    report.Seconds,
		"run_frames": framer.Frames(),
		"labels":     len(report.Averages),
	}).Info("analysis finished")

	return report, nil
}
