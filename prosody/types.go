package prosody

// Weight is the metrical weight of a single segmented unit.
type Weight rune

const (
	// Empty marks an ignorable unit that carries no weight.
	Empty Weight = 0
	// Laghu is a light syllable, written I.
	Laghu Weight = 'I'
	// Guru is a heavy syllable, written U.
	Guru Weight = 'U'
)

// String renders the conventional single-letter marker; Empty renders
// as an empty string.
func (w Weight) String() string {
	if w == Empty {
		return ""
	}
	return string(rune(w))
}

// Pattern concatenates the markers of all weight-bearing entries into a
// string such as "UII". Empty entries are skipped.
func Pattern(weights []Weight) string {
	buf := make([]rune, 0, len(weights))
	for _, w := range weights {
		if w != Empty {
			buf = append(buf, rune(w))
		}
	}
	return string(buf)
}

// Pure returns only the weight-bearing entries, preserving order.
func Pure(weights []Weight) []Weight {
	out := make([]Weight, 0, len(weights))
	for _, w := range weights {
		if w != Empty {
			out = append(out, w)
		}
	}
	return out
}

// Counts tallies guru and laghu entries, ignoring Empty.
func Counts(weights []Weight) (guru, laghu int) {
	for _, w := range weights {
		switch w {
		case Guru:
			guru++
		case Laghu:
			laghu++
		}
	}
	return guru, laghu
}
