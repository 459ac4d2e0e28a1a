package script

// Virama (halant, ్) suppresses a consonant's inherent vowel and joins
// consonant clusters.
const Virama rune = '్'

// Arasunna (ఁ, candrabindu) is metrically silent and treated as ignorable.
const Arasunna rune = 'ఁ'

// zeroWidthSpace appears in scraped corpus text and carries no weight.
const zeroWidthSpace rune = '\u200b'

// runeSet builds a membership set from the runes of s.
func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

var (
	consonants        = runeSet("కఖగఘఙచఛజఝఞటఠడఢణతథదధనపఫబభమయరలవశషసహళఱ")
	independentVowels = runeSet("అఆఇఈఉఊఋౠఎఏఐఒఓఔ")

	// independentLongVowels are the inherently long independent vowels.
	independentLongVowels = runeSet("ఆఈఊౠఏఓ")

	// longVowelSigns are the dependent signs that lengthen a syllable.
	longVowelSigns = runeSet("ాీూేోౌౄ")

	// diacritics: anusvara (ం) and visarga (ః).
	diacritics = runeSet("ంః")

	// ignorables: space, newline, arasunna, zero-width space.
	ignorables = map[rune]struct{}{
		' ':            {},
		'\n':           {},
		Arasunna:       {},
		zeroWidthSpace: {},
	}

	// dependentToIndependent maps each dependent vowel sign to the
	// independent vowel it voices.
	dependentToIndependent = map[rune]rune{
		'ా': 'ఆ', 'ి': 'ఇ', 'ీ': 'ఈ', 'ు': 'ఉ', 'ూ': 'ఊ', 'ృ': 'ఋ',
		'ౄ': 'ౠ', 'ె': 'ఎ', 'ే': 'ఏ', 'ై': 'ఐ', 'ొ': 'ఒ', 'ో': 'ఓ', 'ౌ': 'ఔ',
	}
)

// IsConsonant reports whether r is a Telugu consonant (hallu).
func IsConsonant(r rune) bool { _, ok := consonants[r]; return ok }

// IsIndependentVowel reports whether r is an independent vowel (acchu).
func IsIndependentVowel(r rune) bool { _, ok := independentVowels[r]; return ok }

// IsIndependentLongVowel reports whether r is an inherently long
// independent vowel.
func IsIndependentLongVowel(r rune) bool { _, ok := independentLongVowels[r]; return ok }

// IsDependentVowel reports whether r is a dependent vowel sign (matra).
func IsDependentVowel(r rune) bool { _, ok := dependentToIndependent[r]; return ok }

// IsLongVowelSign reports whether r is a dependent sign that lengthens
// its syllable.
func IsLongVowelSign(r rune) bool { _, ok := longVowelSigns[r]; return ok }

// IsDiacritic reports whether r is the anusvara or visarga mark.
func IsDiacritic(r rune) bool { _, ok := diacritics[r]; return ok }

// IsIgnorable reports whether r carries no metrical weight (whitespace,
// arasunna, zero-width space).
func IsIgnorable(r rune) bool { _, ok := ignorables[r]; return ok }

// IndependentVowel returns the independent vowel voiced by the dependent
// sign r, and whether r is a dependent sign at all.
func IndependentVowel(r rune) (rune, bool) {
	v, ok := dependentToIndependent[r]
	return v, ok
}
