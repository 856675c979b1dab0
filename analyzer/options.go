// SPDX-License-Identifier: EPL-2.0

package analyzer

import (
	"github.com/sirupsen/logrus"

	"github.com/ik5/audscore/classify"
)

type Option func(*Analyzer)

func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Analyzer) {
		a.log = log
	}
}

// WithClassifier replaces the band classifier built from the config.
func WithClassifier(c classify.Classifier) Option {
	return func(a *Analyzer) {
		a.classifier = c
	}
}

// WithReporter is called every report.every_frames frames.
func WithReporter(r Reporter) Option {
	return func(a *Analyzer) {
		a.reporter = r
	}
}
