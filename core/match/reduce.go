// core/match/reduce.go
package match

import "sort"

// Reduce collapses a raw anchor set to its containment-free core: anchors
// whose (reference, query) span lies fully inside an already-retained
// anchor's span are dropped. These arise when several query offsets extend
// into the same aligned region.
//
// The input slice is sorted in place by (RefPos, QueryPos); the returned
// slice keeps that order and satisfies the invariant that no retained
// anchor contains another.
func Reduce(ms []Match) []Match {
	if len(ms) < 2 {
		return ms
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].RefPos != ms[j].RefPos {
			return ms[i].RefPos < ms[j].RefPos
		}
		return ms[i].QueryPos < ms[j].QueryPos
	})
	kept := make([]Match, 0, len(ms))
	for _, m := range ms {
		contained := false
		for _, k := range kept {
			if k.Contains(m) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, m)
		}
	}
	return kept
}

// CollapseQueryDuplicates keeps one anchor per reference occurrence when
// the same maximal substring was reached from several query offsets. The
// unique-in-both class calls this after Reduce, since containment alone
// does not catch equal-length anchors at distinct query positions; the
// earliest query occurrence wins.
func CollapseQueryDuplicates(ms []Match) []Match {
	if len(ms) < 2 {
		return ms
	}
	type occ struct{ ref, n int }
	seen := make(map[occ]struct{}, len(ms))
	kept := ms[:0]
	for _, m := range ms {
		key := occ{m.RefPos, m.Length}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, m)
	}
	return kept
}
