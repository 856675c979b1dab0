// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ik5/audscore/analyzer"
	"github.com/ik5/audscore/classify"
)

const barWidth = 30

// fileReport is a report tagged with the file it came from. File is empty
// for a combined session.
type fileReport struct {
	File string `json:"file,omitempty"`
	analyzer.Report
}

type printer struct {
	w io.Writer

	header *color.Color
	label  *color.Color
	bar    *color.Color
	dim    *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:      w,
		header: color.New(color.Bold),
		label:  color.New(color.FgCyan),
		bar:    color.New(color.FgGreen),
		dim:    color.New(color.Faint),
	}

	if noColor {
		for _, c := range []*color.Color{p.header, p.label, p.bar, p.dim} {
			c.DisableColor()
		}
	}

	return p
}

func (p *printer) newline() {
	fmt.Fprintln(p.w)
}

func (p *printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}

func (p *printer) report(r fileReport) {
	title := "session"
	if r.File != "" {
		title = r.File
	}

	p.header.Fprintf(p.w, "%s\n", title)
	p.dim.Fprintf(p.w, "id %s  frames %d  seconds %.2f\n", r.SessionID, r.Frames, r.Seconds)

	if len(r.Top) == 0 {
		p.dim.Fprintln(p.w, "no scored frames")
		return
	}

	width := 0
	for _, s := range r.Top {
		width = max(width, len(s.Label))
	}

	for _, s := range r.Top {
		p.label.Fprintf(p.w, "%-*s", width, s.Label)
		fmt.Fprintf(p.w, "  %6.2f%%  ", s.Average*100)
		p.bar.Fprintln(p.w, bar(s.Average))
	}
}

func (p *printer) bands(bands []classify.Band) {
	width := len("LABEL")
	for _, b := range bands {
		width = max(width, len(b.Label))
	}

	p.header.Fprintf(p.w, "%-*s  %8s  %8s\n", width, "LABEL", "LOW", "HIGH")
	for _, b := range bands {
		p.label.Fprintf(p.w, "%-*s", width, b.Label)
		fmt.Fprintf(p.w, "  %8.0f  %8.0f\n", b.Low, b.High)
	}
}

func bar(share float64) string {
	n := int(share*barWidth + 0.5)
	n = min(max(n, 0), barWidth)
	return strings.Repeat("#", n)
}
