// core/stats/stats.go

// Package stats computes descriptive assembly statistics over a set of
// sequences: length distribution, N50/N90 and GC content.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"helixalign-core/seq"
)

// Summary holds the aggregate statistics of one sequence set.
type Summary struct {
	Sequences   int
	TotalLength int
	MeanLength  float64
	MinLength   int
	MaxLength   int
	N50         int
	N90         int
	GCPercent   float64
}

// Summarize computes the Summary of seqs. An empty set yields the zero
// Summary.
func Summarize(seqs []seq.Sequence) Summary {
	if len(seqs) == 0 {
		return Summary{}
	}
	lengths := make([]int, len(seqs))
	total := 0
	gc := 0
	for i, s := range seqs {
		lengths[i] = len(s.Seq)
		total += len(s.Seq)
		for _, b := range s.Seq {
			if b == 'G' || b == 'C' {
				gc++
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	sum := Summary{
		Sequences:   len(seqs),
		TotalLength: total,
		MeanLength:  float64(total) / float64(len(seqs)),
		MinLength:   lengths[len(lengths)-1],
		MaxLength:   lengths[0],
		N50:         nx(lengths, total, 50),
		N90:         nx(lengths, total, 90),
	}
	if total > 0 {
		sum.GCPercent = float64(gc) / float64(total) * 100
	}
	return sum
}

// nx returns the Nx statistic over lengths sorted in descending order: the
// length of the shortest sequence in the smallest set covering pct percent
// of the total.
func nx(sortedDesc []int, total int, pct float64) int {
	target := int(float64(total)*pct/100 + 0.5)
	run := 0
	for _, l := range sortedDesc {
		run += l
		if run >= target {
			return l
		}
	}
	if len(sortedDesc) == 0 {
		return 0
	}
	return sortedDesc[0]
}

// Format renders the summary as the human-readable block printed under
// --stats.
func (s Summary) Format(label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Statistics:\n", label)
	fmt.Fprintf(&b, "  Number of sequences: %d\n", s.Sequences)
	fmt.Fprintf(&b, "  Total length: %d\n", s.TotalLength)
	fmt.Fprintf(&b, "  Mean length: %.2f\n", s.MeanLength)
	fmt.Fprintf(&b, "  Min length: %d\n", s.MinLength)
	fmt.Fprintf(&b, "  Max length: %d\n", s.MaxLength)
	fmt.Fprintf(&b, "  N50: %d\n", s.N50)
	fmt.Fprintf(&b, "  N90: %d\n", s.N90)
	fmt.Fprintf(&b, "  GC content: %.2f%%\n", s.GCPercent)
	return b.String()
}
