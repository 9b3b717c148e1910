// internal/output/output.go

// Package output renders anchor sets into the downstream exchange formats.
// Writers own all presentation knowledge: the core hands over 0-based
// coordinates and this package applies each format's conventions (1-based
// listings, headers, CIGAR strings).
package output

import (
	"fmt"
	"io"

	"helixalign-core/match"
)

// Format identifies one downstream record format.
type Format int

const (
	FormatText Format = iota // positional listing, 1-based
	FormatDelta
	FormatPAF
	FormatSAM
)

// ParseFormat maps a --format value onto a Format. An empty value and
// "default" both mean the plain text listing.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text", "default":
		return FormatText, nil
	case "delta":
		return FormatDelta, nil
	case "paf":
		return FormatPAF, nil
	case "sam":
		return FormatSAM, nil
	default:
		return 0, fmt.Errorf("output: unknown format %q (want text, delta, paf or sam)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatDelta:
		return "delta"
	case FormatPAF:
		return "paf"
	case FormatSAM:
		return "sam"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Job is one query's reduced anchor set plus the context writers need.
type Job struct {
	QueryName string
	Query     []byte
	Matches   []match.Match
}

// Writer emits jobs for successive queries in a single format, writing any
// per-run header exactly once, before the first record.
type Writer struct {
	out     io.Writer
	format  Format
	refName string
	refLen  int
	started bool
}

// NewWriter returns a Writer bound to one reference.
func NewWriter(out io.Writer, f Format, refName string, refLen int) *Writer {
	return &Writer{out: out, format: f, refName: refName, refLen: refLen}
}

// Write renders one job.
func (w *Writer) Write(j Job) error {
	if !w.started {
		w.started = true
		if err := w.header(); err != nil {
			return err
		}
	}
	switch w.format {
	case FormatDelta:
		return w.writeDelta(j)
	case FormatPAF:
		return w.writePAF(j)
	case FormatSAM:
		return w.writeSAM(j)
	default:
		return w.writeText(j)
	}
}

func (w *Writer) header() error {
	switch w.format {
	case FormatDelta:
		// Two program lines, mirroring nucmer's delta preamble.
		_, err := fmt.Fprintf(w.out, "NUCMER\nNUCMER\n")
		return err
	case FormatSAM:
		_, err := fmt.Fprintf(w.out, "@HD\tVN:1.6\n@SQ\tSN:%s\tLN:%d\n", w.refName, w.refLen)
		return err
	default:
		return nil
	}
}
