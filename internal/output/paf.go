// internal/output/paf.go
package output

import "fmt"

// pafQuality is the fixed mapping quality reported for exact anchors.
const pafQuality = 60

// writePAF emits one tab-delimited mapping record per anchor, 0-based
// half-open on both sequences.
func (w *Writer) writePAF(j Job) error {
	for _, m := range j.Matches {
		_, err := fmt.Fprintf(w.out, "%s\t%d\t%d\t%d\t+\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			j.QueryName, len(j.Query), m.QueryPos, m.QueryPos+m.Length,
			w.refName, w.refLen, m.RefPos, m.RefPos+m.Length,
			m.Length, m.Length, pafQuality)
		if err != nil {
			return err
		}
	}
	return nil
}
