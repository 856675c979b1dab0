// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audscore"
	"github.com/ik5/audscore/formats"
	"github.com/ik5/audscore/formats/wav"
)

func newConvertCmd(a *app) *cobra.Command {
	var rate int

	cmd := &cobra.Command{
		Use:   "convert IN OUT.wav",
		Short: "Write the mono stream the analyzer hears as a 16-bit WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				rate = a.cfg.Analysis.SampleRate
			}
			return a.convert(args[0], args[1], rate)
		},
	}

	cmd.Flags().IntVarP(&rate, "rate", "r", 0, "output sample rate (default analysis.sample_rate)")

	return cmd
}

func (a *app) convert(inPath, outPath string, rate int) error {
	dec, err := formats.NewRegistry().ForPath(inPath)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer src.Close()

	samples, err := audscore.ResampleToMono(src, rate, 4096)
	if err != nil {
		return fmt.Errorf("resampling %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if err := wav.Encode(out, rate, 1, samples); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	a.log.WithFields(logrus.Fields{
		"in":      inPath,
		"out":     outPath,
		"rate":    rate,
		"samples": len(samples),
	}).Info("converted")

	return nil
}
