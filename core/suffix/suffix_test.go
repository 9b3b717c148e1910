// core/suffix/suffix_test.go
package suffix

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBananaPermutation(t *testing.T) {
	idx, err := New([]byte("banana"), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Sorted suffixes: a(5) ana(3) anana(1) banana(0) na(4) nana(2)
	want := []int{5, 3, 1, 0, 4, 2}
	got := make([]int, idx.Len())
	for r := range got {
		got[r] = idx.Pos(r)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("permutation = %v, want %v", got, want)
	}

	wantLCP := []int{0, 1, 3, 0, 0, 2}
	if !reflect.DeepEqual(idx.LCP(), wantLCP) {
		t.Errorf("lcp = %v, want %v", idx.LCP(), wantLCP)
	}
}

func TestSearchBananaAna(t *testing.T) {
	idx, err := New([]byte("banana"), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lo, hi, ok := idx.Search([]byte("ana"))
	if !ok {
		t.Fatal("expected ana to be found")
	}
	if hi-lo+1 != 2 {
		t.Fatalf("interval size = %d, want 2", hi-lo+1)
	}
	offs := map[int]bool{}
	for r := lo; r <= hi; r++ {
		offs[idx.Pos(r)] = true
	}
	if !offs[1] || !offs[3] {
		t.Errorf("occurrences = %v, want offsets 1 and 3", offs)
	}
}

func TestSearchSoundness(t *testing.T) {
	ref := []byte("ATCGATCGATTTACGN")
	idx, err := New(ref, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Every substring of ref must be found, and every reported offset must
	// actually carry the pattern.
	for start := 0; start < len(ref); start++ {
		for end := start + 1; end <= len(ref); end++ {
			pat := ref[start:end]
			lo, hi, ok := idx.Search(pat)
			if !ok {
				t.Fatalf("Search(%q): not found", pat)
			}
			for r := lo; r <= hi; r++ {
				p := idx.Pos(r)
				if p+len(pat) > len(ref) || string(ref[p:p+len(pat)]) != string(pat) {
					t.Fatalf("Search(%q): rank %d -> offset %d is not an occurrence", pat, r, p)
				}
			}
		}
	}
	for _, absent := range []string{"ATCGC", "GGGG", "X", "ACGT"} {
		if _, _, ok := idx.Search([]byte(absent)); ok {
			t.Errorf("Search(%q): unexpectedly found", absent)
		}
	}
}

func TestSearchEdgeCases(t *testing.T) {
	idx, err := New([]byte("ACGT"), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, ok := idx.Search(nil); ok {
		t.Error("empty pattern should not match")
	}
	empty, err := New(nil, 1)
	if err != nil {
		t.Fatalf("New(empty): %v", err)
	}
	if _, _, ok := empty.Search([]byte("A")); ok {
		t.Error("empty index should not match")
	}
}

func TestSamplingRateValidation(t *testing.T) {
	if _, err := New([]byte("ACGT"), 0); !errors.Is(err, ErrInvalidSampling) {
		t.Fatalf("k=0: err = %v, want ErrInvalidSampling", err)
	}
	// k is a reported passthrough: storage stays dense.
	idx, err := New([]byte("ACGTACGT"), 4)
	if err != nil {
		t.Fatalf("New(k=4): %v", err)
	}
	if idx.SamplingRate() != 4 {
		t.Errorf("SamplingRate = %d, want 4", idx.SamplingRate())
	}
	if idx.Len() != 8 {
		t.Errorf("Len = %d, want dense 8", idx.Len())
	}
}

func TestExtendMaximal(t *testing.T) {
	idx, err := New([]byte("ATCGATCGAT"), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := []struct {
		query string
		start int
		want  int
	}{
		{"TCGATCA", 0, 6}, // TCGATC matches at 1; the final A breaks on G
		{"ATCG", 0, 4},
		{"ATCGATCGAT", 0, 10},
		{"XATCG", 1, 4},
		{"XXXX", 0, 0},
		{"ATCG", 4, 0}, // start beyond the query
	}
	for _, c := range cases {
		got, _, _ := idx.Extend([]byte(c.query), c.start)
		if got != c.want {
			t.Errorf("Extend(%q, %d) = %d, want %d", c.query, c.start, got, c.want)
		}
	}
}

func TestExtendIntervalMatchesSearch(t *testing.T) {
	ref := []byte("ATCGATCGAT")
	idx, err := New(ref, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	q := []byte("ATCG")
	n, lo, hi := idx.Extend(q, 0)
	if n != 4 {
		t.Fatalf("Extend length = %d, want 4", n)
	}
	slo, shi, ok := idx.Search(q)
	if !ok || lo != slo || hi != shi {
		t.Errorf("Extend interval [%d,%d] != Search interval [%d,%d]", lo, hi, slo, shi)
	}
}

func TestLCPAgainstNaive(t *testing.T) {
	// Deterministic pseudo-random-ish sequence exercising repeats.
	ref := []byte(strings.Repeat("ACGTAACCGGTTACGT", 4) + "NNACGTN")
	idx, err := New(ref, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lcp := idx.LCP()
	for r := 1; r < idx.Len(); r++ {
		a, b := ref[idx.Pos(r-1):], ref[idx.Pos(r):]
		n := 0
		for n < len(a) && n < len(b) && a[n] == b[n] {
			n++
		}
		if lcp[r] != n {
			t.Fatalf("lcp[%d] = %d, want %d", r, lcp[r], n)
		}
	}
	if lcp[0] != 0 {
		t.Errorf("lcp[0] = %d, want 0", lcp[0])
	}
}
