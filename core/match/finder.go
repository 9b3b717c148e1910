// core/match/finder.go
package match

import "helixalign-core/suffix"

// Find reports the maximal matches of query against the indexed reference.
// For every query offset it extends once through the index to the maximal
// length anchored there; shorter lengths at the same anchor are prefixes of
// that match and fall to Reduce anyway, so they are never generated.
//
// Classification:
//   - UniqueReference and UniqueBoth keep an anchor only when its reference
//     interval holds exactly one occurrence. Query-side uniqueness for
//     UniqueBoth is enforced afterwards (see CollapseQueryDuplicates).
//   - Unrestricted emits one anchor per reference occurrence in the interval.
//
// Anchors below minLen are discarded. The result is raw: pass it through
// Reduce before handing it to consumers.
func Find(idx *suffix.Index, query []byte, kind Kind, minLen int) []Match {
	if minLen < 1 {
		minLen = 1
	}
	var out []Match
	for i := 0; i < len(query); i++ {
		n, lo, hi := idx.Extend(query, i)
		if n < minLen {
			continue
		}
		if kind == Unrestricted {
			for r := lo; r <= hi; r++ {
				out = append(out, Match{RefPos: idx.Pos(r), QueryPos: i, Length: n})
			}
			continue
		}
		if lo == hi {
			out = append(out, Match{RefPos: idx.Pos(lo), QueryPos: i, Length: n})
		}
	}
	return out
}
