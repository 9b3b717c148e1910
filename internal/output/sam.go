// internal/output/sam.go
package output

import "fmt"

const samMapQ = 60

// writeSAM emits one read-alignment record per anchor: 1-based POS, a
// single full-length match CIGAR operator, and the matched query segment.
func (w *Writer) writeSAM(j Job) error {
	for _, m := range j.Matches {
		segment := j.Query[m.QueryPos : m.QueryPos+m.Length]
		_, err := fmt.Fprintf(w.out, "%s\t0\t%s\t%d\t%d\t%dM\t*\t0\t0\t%s\t*\n",
			j.QueryName, w.refName, m.RefPos+1, samMapQ, m.Length, segment)
		if err != nil {
			return err
		}
	}
	return nil
}
