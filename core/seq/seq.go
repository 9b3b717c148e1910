// core/seq/seq.go
package seq

// Sequence is one nucleotide record: a label plus normalized
// uppercase A/C/G/T/N bytes.
type Sequence struct {
	ID  string
	Seq []byte
}

// Len returns the sequence length in bases.
func (s Sequence) Len() int { return len(s.Seq) }

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// Normalize maps raw nucleotide bytes onto the engine alphabet:
// lowercase is uppercased and anything outside A/C/G/T/N becomes N.
// The input is left untouched; a fresh slice is returned.
func Normalize(raw []byte) []byte {
	out := make([]byte, len(raw))
	for i, b := range raw {
		switch b {
		case 'A', 'a':
			out[i] = 'A'
		case 'C', 'c':
			out[i] = 'C'
		case 'G', 'g':
			out[i] = 'G'
		case 'T', 't':
			out[i] = 'T'
		default:
			out[i] = 'N'
		}
	}
	return out
}

// RevComp returns the reverse complement of s. Bases without a
// Watson-Crick partner (N included) pass through unchanged, so
// RevComp(RevComp(s)) == s for any input.
func RevComp(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return out
}
