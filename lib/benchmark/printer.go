// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package benchmark

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/azalea-tools/azpack/lib/byteformat"
)

// Labels naming who produced each side of a comparison.
const (
	packagedLabel  = "(via Azalea)"
	referenceLabel = "(via Roblox)"
)

// Colors as ANSI/ANSI256 indices; the output profile degrades or drops
// them.
const (
	colorWin       = "6"
	colorLoss      = "9"
	colorPackaged  = "2"
	colorReference = "1"
	colorAzalea    = "13"
	colorRoblox    = "214"
)

// Printer writes benchmark reports, one line per asset.
type Printer struct {
	output   *termenv.Output
	writer   io.Writer
	decimals int
}

// NewPrinter returns a printer writing to w. Colors follow the
// terminal's capabilities (and NO_COLOR / CLICOLOR_FORCE) unless color
// is false, which forces plain text. decimals is the precision of
// formatted byte counts.
func NewPrinter(w io.Writer, decimals int, color bool) *Printer {
	var options []termenv.OutputOption
	if !color {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}
	return &Printer{
		output:   termenv.NewOutput(w, options...),
		writer:   w,
		decimals: decimals,
	}
}

func (p *Printer) styled(text, color string) string {
	return p.output.String(text).Foreground(p.output.Color(color)).String()
}

// Line renders one report:
//
//	win! tree.bin.zst (via Azalea) is smaller than tree.rbxm (via Roblox) by 6.84 KiB
func (p *Printer) Line(report Report) string {
	var tag, comparison string
	if report.Verdict == Loss {
		tag = p.styled("loss!", colorLoss)
		comparison = "is larger than"
	} else {
		tag = p.styled("win!", colorWin)
		comparison = "is smaller than"
	}

	return fmt.Sprintf("%s %s %s %s %s %s by %s",
		tag,
		p.styled(report.Packaged, colorPackaged),
		p.styled(packagedLabel, colorAzalea),
		comparison,
		p.styled(report.Reference, colorReference),
		p.styled(referenceLabel, colorRoblox),
		byteformat.Format(report.Delta, p.decimals),
	)
}

// SummaryLine renders the batch total:
//
//	total: 3 won, 1 lost; win! 12 KiB (via Azalea) vs 40 KiB (via Roblox) by 28 KiB
func (p *Printer) SummaryLine(summary Summary) string {
	tag := p.styled("win!", colorWin)
	if summary.Verdict == Loss {
		tag = p.styled("loss!", colorLoss)
	}
	return fmt.Sprintf("total: %d won, %d lost; %s %s %s vs %s %s by %s",
		summary.Wins,
		summary.Losses,
		tag,
		byteformat.Format(summary.PackagedSize, p.decimals),
		p.styled(packagedLabel, colorAzalea),
		byteformat.Format(summary.ReferenceSize, p.decimals),
		p.styled(referenceLabel, colorRoblox),
		byteformat.Format(summary.Delta, p.decimals),
	)
}

// Print writes a line per report, followed by a summary line when
// there is more than one report.
func (p *Printer) Print(reports []Report) error {
	for _, report := range reports {
		if _, err := fmt.Fprintln(p.writer, p.Line(report)); err != nil {
			return err
		}
	}
	if len(reports) > 1 {
		if _, err := fmt.Fprintln(p.writer, p.SummaryLine(Summarize(reports))); err != nil {
			return err
		}
	}
	return nil
}
