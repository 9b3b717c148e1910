// core/align/aligner.go
package align

import (
	"helixalign-core/match"
	"helixalign-core/seq"
	"helixalign-core/suffix"
)

// Aligner holds one suffix-array index over the reference plus the run
// options. Construction does all the heavy work; afterwards the Aligner is
// immutable and safe to share across goroutines.
type Aligner struct {
	idx  *suffix.Index
	opts Options
}

// NewAligner validates opts, indexes the reference and returns the ready
// Aligner. Option and construction failures surface here, synchronously;
// per-query alignment afterwards cannot fail.
func NewAligner(reference []byte, opts Options) (*Aligner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	idx, err := suffix.New(reference, 1)
	if err != nil {
		return nil, err
	}
	return &Aligner{idx: idx, opts: opts}, nil
}

// Options returns the run configuration the Aligner was built with.
func (a *Aligner) Options() Options { return a.opts }

// Index exposes the shared read-only reference index.
func (a *Aligner) Index() *suffix.Index { return a.idx }

// Align returns the reduced anchor set for one query, honoring the strand
// selection. Reverse-strand anchors are reported in the original query's
// coordinates via the exact inverse mapping qp' = len(query) - qp - length.
// Forward and reverse sets are independent classification runs and are
// concatenated without cross-strand reduction. A query with no hits yields
// an empty set, never an error.
func (a *Aligner) Align(query []byte) []match.Match {
	var out []match.Match
	if a.opts.Strand != ReverseOnly {
		out = append(out, a.alignStrand(query)...)
	}
	if a.opts.Strand != ForwardOnly {
		ms := a.alignStrand(seq.RevComp(query))
		for i := range ms {
			ms[i].QueryPos = len(query) - ms[i].QueryPos - ms[i].Length
		}
		out = append(out, ms...)
	}
	return out
}

func (a *Aligner) alignStrand(q []byte) []match.Match {
	ms := match.Find(a.idx, q, a.opts.Kind, a.opts.MinLength)
	ms = match.Reduce(ms)
	if a.opts.Kind == match.UniqueBoth {
		ms = match.CollapseQueryDuplicates(ms)
	}
	return ms
}
