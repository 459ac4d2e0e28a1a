package dwipada

import "github.com/kavyateja/chandassu/script"

// YatiQuality grades an alliteration match.
type YatiQuality int

const (
	// YatiNone means the letters share no phonological kinship.
	YatiNone YatiQuality = iota
	// YatiGroup means the letters sit in a common yati maitri group.
	YatiGroup
	// YatiExact means the letters are identical.
	YatiExact
)

func (q YatiQuality) String() string {
	switch q {
	case YatiExact:
		return "exact"
	case YatiGroup:
		return "group"
	default:
		return "none"
	}
}

// YatiVerdict reports one yati check between two letters.
type YatiVerdict struct {
	Letter1 string
	Letter2 string
	Match   bool
	Quality YatiQuality
	// GroupIndex is the matching yati maitri group for a group-quality
	// match, -1 otherwise.
	GroupIndex int
	// GroupMembers lists the full membership of the matching group as
	// evidence; nil unless Quality is YatiGroup.
	GroupMembers []string
}

// MatchYati checks the alliteration rule between two letters. Exact
// equality outranks group kinship; the first shared group in table
// order decides a group match. Empty input on either side is a clean
// no-match, never a fault.
func MatchYati(letter1, letter2 string) YatiVerdict {
	v := YatiVerdict{Letter1: letter1, Letter2: letter2, GroupIndex: -1}
	if letter1 == "" || letter2 == "" {
		return v
	}
	if letter1 == letter2 {
		v.Match = true
		v.Quality = YatiExact
		return v
	}
	if idx, ok := script.SharedYatiGroup(letter1, letter2); ok {
		v.Match = true
		v.Quality = YatiGroup
		v.GroupIndex = idx
		v.GroupMembers = script.YatiGroup(idx)
	}
	return v
}
