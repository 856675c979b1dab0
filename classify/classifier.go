// SPDX-License-Identifier: EPL-2.0

package classify

// Classifier scores a single mono frame.
type Classifier interface {
	Classify(frame []float32) map[string]float64
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(frame []float32) map[string]float64

func (f ClassifierFunc) Classify(frame []float32) map[string]float64 { return f(frame) }
