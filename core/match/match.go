// core/match/match.go
package match

import "fmt"

// Match is one exact-match anchor: an identical substring of the reference
// and a query, in 0-based coordinates.
type Match struct {
	RefPos   int
	QueryPos int
	Length   int
}

// Contains reports whether m's span fully covers o's span on both the
// reference and the query axis.
func (m Match) Contains(o Match) bool {
	return m.RefPos <= o.RefPos &&
		m.RefPos+m.Length >= o.RefPos+o.Length &&
		m.QueryPos <= o.QueryPos &&
		m.QueryPos+m.Length >= o.QueryPos+o.Length
}

// Kind selects the uniqueness class of reported matches.
type Kind int

const (
	// UniqueReference keeps matches unique in the reference only (MAM).
	// This is the default, matching mummer's -mumreference.
	UniqueReference Kind = iota
	// UniqueBoth keeps matches unique in reference and query (MUM).
	UniqueBoth
	// Unrestricted keeps every maximal match regardless of uniqueness (MEM).
	Unrestricted
)

func (k Kind) String() string {
	switch k {
	case UniqueBoth:
		return "mum"
	case UniqueReference:
		return "mumreference"
	case Unrestricted:
		return "maxmatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps the mummer-style mode names onto a Kind.
// "mumcand" is a historical alias for "mumreference".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "mum":
		return UniqueBoth, nil
	case "mumreference", "mumcand":
		return UniqueReference, nil
	case "maxmatch":
		return Unrestricted, nil
	default:
		return 0, fmt.Errorf("match: unknown kind %q", s)
	}
}
