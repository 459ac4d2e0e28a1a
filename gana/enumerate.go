package gana

import "github.com/kavyateja/chandassu/prosody"

// Unit is one named gana inside a decomposition.
type Unit struct {
	Pattern string
	Name    string
	Family  Family
}

// Decomposition is an ordered sequence of ganas that exactly tiles a
// weight-marker string.
type Decomposition []Unit

// Pattern reconstructs the tiled marker string.
func (d Decomposition) Pattern() string {
	out := ""
	for _, u := range d {
		out += u.Pattern
	}
	return out
}

// EnumerateDecompositions returns every ordered decomposition of the
// weight sequence into ganas from the full pattern table, in prefix
// length order (shorter first prefix before longer). Empty markers are
// dropped first; an empty sequence has exactly one decomposition, the
// empty one. A sequence with no tiling yields an empty slice.
//
// The recursion memoizes on the unconsumed suffix. The cache is created
// fresh for each call and discarded at return, so concurrent calls
// never share state.
func EnumerateDecompositions(weights []prosody.Weight) []Decomposition {
	pattern := prosody.Pattern(weights)
	memo := make(map[string][]Decomposition)
	return solve(pattern, memo)
}

func solve(suffix string, memo map[string][]Decomposition) []Decomposition {
	if suffix == "" {
		return []Decomposition{nil}
	}
	if cached, ok := memo[suffix]; ok {
		return cached
	}

	var out []Decomposition
	for l := 1; l <= MaxPatternLen && l <= len(suffix); l++ {
		prefix := suffix[:l]
		entry, ok := Lookup(prefix)
		if !ok {
			continue
		}
		head := Unit{Pattern: prefix, Name: entry.Name, Family: entry.Family}
		for _, rest := range solve(suffix[l:], memo) {
			dec := make(Decomposition, 0, len(rest)+1)
			dec = append(dec, head)
			dec = append(dec, rest...)
			out = append(out, dec)
		}
	}
	memo[suffix] = out
	return out
}

// MapAksharas attaches the line's weight-bearing aksharas to one
// decomposition, position by position. The weights and units slices are
// parallel as produced by segmentation and weight assignment. Segments
// that run past the available aksharas get nil.
func MapAksharas(d Decomposition, weights []prosody.Weight, units []string) [][]string {
	var pure []string
	for i, w := range weights {
		if w == prosody.Empty {
			continue
		}
		if i < len(units) {
			pure = append(pure, units[i])
		}
	}
	out := make([][]string, len(d))
	pos := 0
	for i, u := range d {
		l := len(u.Pattern)
		if pos+l <= len(pure) {
			out[i] = pure[pos : pos+l]
		}
		pos += l
	}
	return out
}
