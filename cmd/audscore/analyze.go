// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audscore/analyzer"
	"github.com/ik5/audscore/audio"
	"github.com/ik5/audscore/config"
	"github.com/ik5/audscore/formats"
)

type analyzeFlags struct {
	top         int
	json        bool
	perFile     bool
	strict      bool
	reportEvery int
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var fl analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Average band scores over one or more files",
		Long: `Analyze decodes every file in order and scores each frame by frequency
band. By default all files share one session, so the result is the average
over everything that was played. --per-file starts a new session for each
file and prints one result per file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("top") {
				cfg.Report.Top = fl.top
			}
			if cmd.Flags().Changed("report-every") {
				cfg.Report.EveryFrames = fl.reportEvery
			}
			if fl.strict {
				cfg.Analysis.Strict = true
			}

			return a.analyze(cmd, &cfg, fl, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&fl.top, "top", "n", 0, "number of labels to show, 0 shows all (default from config)")
	f.BoolVar(&fl.json, "json", false, "print JSON instead of a table")
	f.BoolVar(&fl.perFile, "per-file", false, "reset the session between files")
	f.BoolVar(&fl.strict, "strict", false, "fail on non-finite scores")
	f.IntVar(&fl.reportEvery, "report-every", 0, "log progress every N frames (default from config)")

	return cmd
}

func (a *app) analyze(cmd *cobra.Command, cfg *config.Root, fl analyzeFlags, files []string) error {
	an, err := analyzer.New(cfg,
		analyzer.WithLogger(a.log),
		analyzer.WithReporter(func(r analyzer.Report) {
			fields := logrus.Fields{"frames": r.Frames, "seconds": r.Seconds}
			if len(r.Top) > 0 {
				fields["leader"] = r.Top[0].Label
			}
			a.log.WithFields(fields).Info("progress")
		}),
	)
	if err != nil {
		return err
	}

	reg := formats.NewRegistry()
	out := newPrinter(cmd.OutOrStdout(), a.noColor)

	var results []fileReport
	for _, path := range files {
		report, err := a.analyzeFile(cmd, an, reg, path)
		if err != nil {
			return err
		}

		if fl.perFile {
			results = append(results, fileReport{File: path, Report: report})
			an.Reset()
		}
	}

	if !fl.perFile {
		results = append(results, fileReport{File: "", Report: an.Snapshot()})
	}

	if fl.json {
		if fl.perFile {
			return out.writeJSON(results)
		}
		return out.writeJSON(results[0])
	}

	for i, r := range results {
		if i > 0 {
			out.newline()
		}
		out.report(r)
	}

	return nil
}

func (a *app) analyzeFile(cmd *cobra.Command, an *analyzer.Analyzer, reg *audio.Registry, path string) (analyzer.Report, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return analyzer.Report{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return analyzer.Report{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return analyzer.Report{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	a.log.WithFields(logrus.Fields{
		"file":     path,
		"rate":     src.SampleRate(),
		"channels": src.Channels(),
	}).Info("analyzing")

	report, err := an.Run(cmd.Context(), src)
	if err != nil {
		return report, fmt.Errorf("%s: %w", path, err)
	}

	return report, nil
}
