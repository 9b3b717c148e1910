// internal/appcore/core.go

// Package appcore is the run wiring shared by the helixalign and nucalign
// personalities: ingest the reference, build the aligner once, fan out over
// the query files and hand each anchor set to the format writer.
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"helixalign-core/align"
	"helixalign-core/fasta"
	"helixalign-core/match"
	"helixalign-core/seq"
	"helixalign-core/stats"

	"helixalign/internal/output"
)

// Params is everything a personality resolved from its flag surface.
type Params struct {
	RefPath    string
	QueryPaths []string

	Kind      match.Kind
	MinLength int
	Strand    align.Strand
	Workers   int
	Extension align.ExtensionConfig
	Progress  func(done, total int)

	Format output.Format
	Stats  bool
	Quiet  bool
}

// Run executes one alignment run and writes records to stdout. Run logging
// goes to stderr via slog; --quiet raises the level past it.
func Run(ctx context.Context, p Params, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if p.Quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	refRecs, err := fasta.ReadAll(p.RefPath)
	if err != nil {
		return fmt.Errorf("read reference: %w", err)
	}
	if len(refRecs) == 0 {
		return fmt.Errorf("reference %s holds no sequences", p.RefPath)
	}
	if p.Stats {
		fmt.Fprintln(outw, stats.Summarize(refRecs).Format("Reference"))
	}

	refName := refRecs[0].ID
	reference := refRecs[0].Seq
	if len(refRecs) > 1 {
		logger.Warn("reference has multiple records; treating them as one concatenated sequence",
			"path", p.RefPath, "records", len(refRecs))
		reference = concat(refRecs)
	}

	start := time.Now()
	aligner, err := align.NewAligner(reference, align.Options{
		Kind:      p.Kind,
		MinLength: p.MinLength,
		Strand:    p.Strand,
		Workers:   p.Workers,
		Progress:  p.Progress,
		Extension: p.Extension,
	})
	if err != nil {
		return err
	}
	logger.Info("reference indexed",
		"name", refName, "length", len(reference), "elapsed", time.Since(start).Round(time.Millisecond))

	w := output.NewWriter(outw, p.Format, refName, len(reference))
	totalQueries := 0
	totalMatches := 0
	for _, qp := range p.QueryPaths {
		recs, err := fasta.ReadAll(qp)
		if err != nil {
			return fmt.Errorf("read query: %w", err)
		}
		if p.Stats {
			fmt.Fprintln(outw, stats.Summarize(recs).Format("Query"))
		}
		queries := make([][]byte, len(recs))
		for i := range recs {
			queries[i] = recs[i].Seq
		}
		results, err := aligner.AlignAll(ctx, queries)
		if err != nil {
			return err
		}
		for i, ms := range results {
			job := output.Job{QueryName: recs[i].ID, Query: recs[i].Seq, Matches: ms}
			if err := w.Write(job); err != nil {
				return err
			}
			totalMatches += len(ms)
		}
		totalQueries += len(recs)
	}
	logger.Info("alignment complete",
		"queries", totalQueries, "matches", totalMatches, "elapsed", time.Since(start).Round(time.Millisecond))

	return outw.Flush()
}

func concat(recs []seq.Sequence) []byte {
	n := 0
	for _, r := range recs {
		n += len(r.Seq)
	}
	out := make([]byte, 0, n)
	for _, r := range recs {
		out = append(out, r.Seq...)
	}
	return out
}
