// SPDX-License-Identifier: EPL-2.0

// Package config loads analysis settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audscore/classify"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Analysis struct {
	SampleRate int     `yaml:"sample_rate"`
	FrameSize  int     `yaml:"frame_size"`
	HopSize    int     `yaml:"hop_size"`
	SilenceRMS float64 `yaml:"silence_rms"`
	Strict     bool    `yaml:"strict"`
}

type Report struct {
	// EveryFrames triggers a progress report every N frames; 0 disables it.
	EveryFrames int `yaml:"every_frames"`
	Top         int `yaml:"top"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Root struct {
	Analysis Analysis        `yaml:"analysis"`
	Report   Report          `yaml:"report"`
	Bands    []classify.Band `yaml:"bands"`
	Log      Log             `yaml:"log"`
}

func Default() *Root {
	return &Root{
		Analysis: Analysis{
			SampleRate: 16000,
			FrameSize:  1024,
			HopSize:    512,
			SilenceRMS: 1e-3,
		},
		Report: Report{
			Top: 5,
		},
		Bands: classify.DefaultBands(),
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys missing from the file keep their default values, keys present in it
// win even when zero, and a bands list in the file replaces the default
// bands entirely.
func Load(path string) (*Root, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Root) Validate() error {
	a := c.Analysis
	switch {
	case a.SampleRate <= 0:
		return fmt.Errorf("%w: analysis.sample_rate must be positive", ErrInvalidConfig)
	case a.FrameSize < 2:
		return fmt.Errorf("%w: analysis.frame_size must be at least 2", ErrInvalidConfig)
	case a.HopSize <= 0 || a.HopSize > a.FrameSize:
		return fmt.Errorf("%w: analysis.hop_size must be in (0, frame_size]", ErrInvalidConfig)
	case a.SilenceRMS < 0:
		return fmt.Errorf("%w: analysis.silence_rms must not be negative", ErrInvalidConfig)
	case c.Report.EveryFrames < 0:
		return fmt.Errorf("%w: report.every_frames must not be negative", ErrInvalidConfig)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}

	if err := classify.ValidateBands(c.Bands); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
