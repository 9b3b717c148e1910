// internal/output/delta.go
package output

import "fmt"

// writeDelta emits a delta-style alignment summary: a sequence-pair line,
// then per anchor the 1-based inclusive start/end on each sequence, both
// total lengths and the match length.
func (w *Writer) writeDelta(j Job) error {
	if _, err := fmt.Fprintf(w.out, "> %s %s\n", w.refName, j.QueryName); err != nil {
		return err
	}
	for _, m := range j.Matches {
		_, err := fmt.Fprintf(w.out, "%d %d %d %d %d %d %d\n",
			m.RefPos+1, m.RefPos+m.Length,
			m.QueryPos+1, m.QueryPos+m.Length,
			w.refLen, len(j.Query), m.Length)
		if err != nil {
			return err
		}
	}
	return nil
}
