package akshara

import "github.com/kavyateja/chandassu/script"

// Segment splits text into an ordered sequence of akshara units.
// Ignorable runes (spaces, newlines, arasunna, zero-width space) each
// form their own unit so that concatenating the result reproduces the
// input exactly. Empty input yields nil.
func Segment(text string) []string {
	rs := []rune(text)
	n := len(rs)
	if n == 0 {
		return nil
	}

	coarse := make([]string, 0, n)
	for i := 0; i < n; {
		r := rs[i]
		if script.IsIgnorable(r) {
			coarse = append(coarse, string(r))
			i++
			continue
		}

		start := i
		switch {
		case script.IsConsonant(r):
			i++
			// conjunct chain: (virama consonant)*, stopping as soon as a
			// virama is not followed by a consonant
			for i < n && rs[i] == script.Virama {
				i++
				if i < n && script.IsConsonant(rs[i]) {
					i++
				} else {
					break
				}
			}
			// trailing vowel signs and diacritics
			for i < n && (script.IsDependentVowel(rs[i]) || script.IsDiacritic(rs[i])) {
				i++
			}
		case r == script.Virama && len(coarse) > 0:
			// a virama with no consonant of its own attaches to the
			// preceding unit rather than standing alone
			coarse[len(coarse)-1] += string(r)
			i++
			continue
		default:
			i++
			if script.IsIndependentVowel(r) && i < n && script.IsDiacritic(rs[i]) {
				i++
			}
		}
		coarse = append(coarse, string(rs[start:i]))
	}

	// merge pass: fold a bare consonant+virama (pollu) into the unit
	// before it, unless that unit is ignorable
	out := make([]string, 0, len(coarse))
	for _, unit := range coarse {
		if isPollu(unit) && len(out) > 0 && !isIgnorableUnit(out[len(out)-1]) {
			out[len(out)-1] += unit
			continue
		}
		out = append(out, unit)
	}
	return out
}

// isPollu reports whether unit is exactly one consonant followed by a
// virama, a word-final consonant with no audible vowel.
func isPollu(unit string) bool {
	rs := []rune(unit)
	return len(rs) == 2 && script.IsConsonant(rs[0]) && rs[1] == script.Virama
}

// isIgnorableUnit reports whether unit is a single ignorable rune.
func isIgnorableUnit(unit string) bool {
	rs := []rune(unit)
	return len(rs) == 1 && script.IsIgnorable(rs[0])
}

// Pure filters out ignorable units, keeping only weight-bearing aksharas.
func Pure(units []string) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		if !isIgnorableUnit(u) {
			out = append(out, u)
		}
	}
	return out
}

// IsIgnorable reports whether a segmented unit is an ignorable
// (non-weight-bearing) unit.
func IsIgnorable(unit string) bool { return isIgnorableUnit(unit) }
