// internal/output/text.go
package output

import "fmt"

// writeText prints the classic positional listing: a query banner followed
// by one 1-based line per anchor.
func (w *Writer) writeText(j Job) error {
	if _, err := fmt.Fprintf(w.out, "> Query: %s\n", j.QueryName); err != nil {
		return err
	}
	for _, m := range j.Matches {
		_, err := fmt.Fprintf(w.out, "  Ref: %d  Query: %d  Len: %d\n",
			m.RefPos+1, m.QueryPos+1, m.Length)
		if err != nil {
			return err
		}
	}
	return nil
}
