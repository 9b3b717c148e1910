// core/suffix/suffix.go
package suffix

import (
	"bytes"
	"errors"
	"sort"
)

// ErrInvalidSampling is returned by New when the sampling rate is zero.
var ErrInvalidSampling = errors.New("suffix: sampling rate must be >= 1")

// Index is a suffix-array index over one reference sequence. It is built
// once and never mutated afterwards, so a single Index may be shared by
// reference across any number of concurrent readers without locking.
type Index struct {
	seq []byte
	sa  []int // permutation of 0..len(seq)-1, sorted by suffix
	lcp []int // lcp[i] = shared prefix of suffixes at ranks i-1 and i
	k   int   // sampling rate; validated and reported, storage is dense
}

// New builds the index for sequence with sampling rate k. The sequence is
// copied, so the caller may reuse its buffer. k must be >= 1; the current
// implementation stores every suffix regardless of k (dense storage) but
// still reports the configured rate via SamplingRate.
func New(sequence []byte, k int) (*Index, error) {
	if k < 1 {
		return nil, ErrInvalidSampling
	}
	seq := append([]byte(nil), sequence...)
	sa := make([]int, len(seq))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(seq[sa[a]:], seq[sa[b]:]) < 0
	})
	return &Index{seq: seq, sa: sa, lcp: buildLCP(seq, sa), k: k}, nil
}

// buildLCP computes the LCP array with Kasai's algorithm in O(n):
// lcp[0] = 0 and lcp[i] counts the equal leading bytes of the suffixes
// at sorted ranks i-1 and i.
func buildLCP(seq []byte, sa []int) []int {
	n := len(sa)
	lcp := make([]int, n)
	if n == 0 {
		return lcp
	}
	rank := make([]int, n)
	for r, p := range sa {
		rank[p] = r
	}
	h := 0
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			h = 0
			continue
		}
		j := sa[r-1]
		for i+h < n && j+h < n && seq[i+h] == seq[j+h] {
			h++
		}
		lcp[r] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}

// step narrows the rank interval [lo,hi] to the entries whose suffix byte
// at offset off equals c. Within [lo,hi] all suffixes share the bytes
// already matched, so they are ordered by the byte at off, with suffixes
// too short to have one sorting below every byte.
func (x *Index) step(c byte, off, lo, hi int) (int, int, bool) {
	n := hi - lo + 1
	left := lo + sort.Search(n, func(i int) bool {
		p := x.sa[lo+i]
		return p+off < len(x.seq) && x.seq[p+off] >= c
	})
	right := lo + sort.Search(n, func(i int) bool {
		p := x.sa[lo+i]
		return p+off < len(x.seq) && x.seq[p+off] > c
	}) - 1
	if left > right {
		return 0, 0, false
	}
	return left, right, true
}

// Search returns the inclusive rank interval of suffixes that have pattern
// as a prefix. ok is false when the pattern is empty, the index is empty,
// or the pattern does not occur; none of those are errors.
func (x *Index) Search(pattern []byte) (lo, hi int, ok bool) {
	if len(pattern) == 0 || len(x.sa) == 0 {
		return 0, 0, false
	}
	lo, hi = 0, len(x.sa)-1
	for off := 0; off < len(pattern); off++ {
		lo, hi, ok = x.step(pattern[off], off, lo, hi)
		if !ok {
			return 0, 0, false
		}
	}
	return lo, hi, true
}

// Extend matches query[start:] against the index one byte at a time and
// stops at the first byte that empties the interval, or at the end of the
// query. It returns the number of bytes matched and the rank interval of
// the longest matched prefix. This yields the maximal match length anchored
// at start in O(m log n) without retrying candidate lengths.
//
// A length of 0 means not even query[start] occurs; the interval is then
// the full index and is not meaningful.
func (x *Index) Extend(query []byte, start int) (length, lo, hi int) {
	lo, hi = 0, len(x.sa)-1
	if len(x.sa) == 0 || start < 0 || start >= len(query) {
		return 0, lo, hi
	}
	for i := start; i < len(query); i++ {
		nlo, nhi, ok := x.step(query[i], i-start, lo, hi)
		if !ok {
			break
		}
		lo, hi = nlo, nhi
		length++
	}
	return length, lo, hi
}

// Pos returns the reference offset of the suffix at sorted rank r.
func (x *Index) Pos(r int) int { return x.sa[r] }

// Len returns the number of indexed suffixes.
func (x *Index) Len() int { return len(x.sa) }

// SamplingRate returns the configured sampling rate k.
func (x *Index) SamplingRate() int { return x.k }

// Sequence returns the indexed reference bytes. Callers must treat the
// slice as read-only.
func (x *Index) Sequence() []byte { return x.seq }

// LCP returns the longest-common-prefix array aligned to the sorted
// suffix order. Callers must treat the slice as read-only.
func (x *Index) LCP() []int { return x.lcp }
