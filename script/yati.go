package script

// yatiMaitriGroups are the phonological equivalence groups used by the
// yati (alliteration) rule: letters within one group may substitute for
// each other at the yati position. Entries may span several code points
// (అం, క్ష, ము) because the tradition groups whole letter shapes, not
// bare code points.
var yatiMaitriGroups = [][]string{
	{"అ", "ఆ", "ఐ", "ఔ", "హ", "య", "అం", "అః"},
	{"ఇ", "ఈ", "ఎ", "ఏ", "ఋ"},
	{"ఉ", "ఊ", "ఒ", "ఓ"},
	{"క", "ఖ", "గ", "ఘ", "క్ష"},
	{"చ", "ఛ", "జ", "ఝ", "శ", "ష", "స"},
	{"ట", "ఠ", "డ", "ఢ"},
	{"త", "థ", "ద", "ధ"},
	{"ప", "ఫ", "బ", "భ", "వ"},
	{"ర", "ల", "ఱ", "ళ"},
	{"న", "ణ"},
	{"మ", "పు", "ఫు", "బు", "భు", "ము"},
}

// yatiMembership maps a letter to the indices of every group containing it.
var yatiMembership = func() map[string][]int {
	m := make(map[string][]int)
	for i, group := range yatiMaitriGroups {
		for _, letter := range group {
			m[letter] = append(m[letter], i)
		}
	}
	return m
}()

// YatiGroupCount returns the number of yati-maitri groups.
func YatiGroupCount() int { return len(yatiMaitriGroups) }

// YatiGroup returns the members of group i, or nil when i is out of range.
// Callers must not mutate the returned slice.
func YatiGroup(i int) []string {
	if i < 0 || i >= len(yatiMaitriGroups) {
		return nil
	}
	return yatiMaitriGroups[i]
}

// YatiGroupsOf returns the indices of every yati-maitri group containing
// letter, in group order. Unknown letters yield nil.
func YatiGroupsOf(letter string) []int { return yatiMembership[letter] }

// SharedYatiGroup returns the index of the first yati-maitri group that
// contains both letters, scanning groups in table order. The boolean is
// false when no group holds both.
func SharedYatiGroup(l1, l2 string) (int, bool) {
	if l1 == "" || l2 == "" {
		return 0, false
	}
	for i, group := range yatiMaitriGroups {
		in1, in2 := false, false
		for _, member := range group {
			if member == l1 {
				in1 = true
			}
			if member == l2 {
				in2 = true
			}
		}
		if in1 && in2 {
			return i, true
		}
	}
	return 0, false
}
