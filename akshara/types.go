package akshara

import "sort"

// Tag is one phonological label attached to an akshara. Structural tags
// are defined below; the remaining tags are the letter-class names from
// the script package (script.ClassKaVarga and friends).
type Tag string

// Structural tags emitted by Classify.
const (
	// TagVowel marks an akshara led by an independent vowel (acchu).
	TagVowel Tag = "acchu"

	// TagConsonant marks an akshara containing any consonant (hallu).
	TagConsonant Tag = "hallu"

	// TagLongVowel marks a long syllable (deergham): a long vowel sign or
	// an inherently long independent vowel.
	TagLongVowel Tag = "deergham"

	// TagVisarga marks the visarga diacritic (ః).
	TagVisarga Tag = "visarga-aksharam"

	// TagAnusvara marks the anusvara diacritic (ం).
	TagAnusvara Tag = "anusvaram"

	// TagConjunct marks two different consonants joined by a virama
	// (samyuktaksharam).
	TagConjunct Tag = "samyuktaksharam"

	// TagDoubled marks the same consonant on both sides of a virama
	// (dvitvaksharam).
	TagDoubled Tag = "dvitvaksharam"

	// TagShortVowel marks a short syllable (hrasvaksharam): a vowel or
	// consonant is present but none of long/anusvara/visarga applies.
	TagShortVowel Tag = "hrasvaksharam"
)

// TagSet is an unordered set of tags. The zero value is not usable;
// construct with NewTagSet.
type TagSet map[Tag]struct{}

// NewTagSet returns an empty TagSet, optionally seeded with tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts t into the set.
func (s TagSet) Add(t Tag) { s[t] = struct{}{} }

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool { _, ok := s[t]; return ok }

// Len returns the number of tags in the set.
func (s TagSet) Len() int { return len(s) }

// Sorted returns the tags in lexicographic order, for deterministic
// display and comparison.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
