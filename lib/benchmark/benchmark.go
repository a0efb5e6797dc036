// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package benchmark

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Verdict is the outcome of one comparison.
type Verdict int

const (
	// Win means the packaged artifact is no larger than the reference.
	Win Verdict = iota
	// Loss means the packaged artifact is larger than the reference.
	Loss
)

// String returns "win" or "loss".
func (v Verdict) String() string {
	switch v {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// Compare returns the verdict and the non-negative size difference.
func Compare(packagedSize, referenceSize int64) (Verdict, int64) {
	delta := referenceSize - packagedSize
	if delta < 0 {
		return Loss, -delta
	}
	return Win, delta
}

// Pair names a packaged artifact and the reference it competes with.
type Pair struct {
	Packaged  string
	Reference string
}

// Report is the comparison of one pair.
type Report struct {
	Pair

	PackagedSize  int64
	ReferenceSize int64

	Verdict Verdict
	// Delta is the magnitude of the difference: bytes saved for a
	// win, bytes added for a loss.
	Delta int64
}

// NewReport compares two known sizes.
func NewReport(pair Pair, packagedSize, referenceSize int64) Report {
	verdict, delta := Compare(packagedSize, referenceSize)
	return Report{
		Pair:          pair,
		PackagedSize:  packagedSize,
		ReferenceSize: referenceSize,
		Verdict:       verdict,
		Delta:         delta,
	}
}

// Measure stats every pair in parallel and returns reports in pair
// order. Any unreadable file fails the whole measurement.
func Measure(ctx context.Context, pairs []Pair, concurrency int) ([]Report, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	reports := make([]Report, len(pairs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for index, pair := range pairs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			packagedSize, err := fileSize(pair.Packaged)
			if err != nil {
				return err
			}
			referenceSize, err := fileSize(pair.Reference)
			if err != nil {
				return err
			}
			reports[index] = NewReport(pair, packagedSize, referenceSize)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("measuring %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("measuring %s: not a regular file", path)
	}
	return info.Size(), nil
}

// Summary aggregates a set of reports.
type Summary struct {
	Wins   int
	Losses int

	PackagedSize  int64
	ReferenceSize int64

	Verdict Verdict
	Delta   int64
}

// Summarize totals reports. The overall verdict compares the summed
// sizes, not the win count.
func Summarize(reports []Report) Summary {
	var summary Summary
	for _, report := range reports {
		if report.Verdict == Loss {
			summary.Losses++
		} else {
			summary.Wins++
		}
		summary.PackagedSize += report.PackagedSize
		summary.ReferenceSize += report.ReferenceSize
	}
	summary.Verdict, summary.Delta = Compare(summary.PackagedSize, summary.ReferenceSize)
	return summary
}
