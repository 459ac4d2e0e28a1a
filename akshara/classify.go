package akshara

import "github.com/kavyateja/chandassu/script"

// Classify derives the full phonological tag set of one akshara from its
// text. The result is deterministic and depends only on the input; empty
// input yields an empty set, never a fault.
func Classify(aksh string) TagSet {
	tags := NewTagSet()
	rs := []rune(aksh)
	if len(rs) == 0 {
		return tags
	}

	if script.IsIndependentVowel(rs[0]) {
		tags.Add(TagVowel)
	} else if len(rs) == 1 && script.IsDiacritic(rs[0]) {
		tags.Add(TagVowel)
	}

	hasConsonant := false
	for _, r := range rs {
		if script.IsConsonant(r) {
			hasConsonant = true
			break
		}
	}
	if hasConsonant {
		tags.Add(TagConsonant)
	}

	long := len(rs) == 1 && script.IsIndependentLongVowel(rs[0])
	for _, r := range rs {
		if script.IsLongVowelSign(r) {
			long = true
		}
		switch r {
		case 'ః':
			tags.Add(TagVisarga)
		case 'ం':
			tags.Add(TagAnusvara)
		}
	}
	if long {
		tags.Add(TagLongVowel)
	}

	// internal consonant-virama-consonant runs: doubled when both sides
	// agree, conjunct otherwise
	for i := 0; i+2 < len(rs); i++ {
		if script.IsConsonant(rs[i]) && rs[i+1] == script.Virama && script.IsConsonant(rs[i+2]) {
			if rs[i] == rs[i+2] {
				tags.Add(TagDoubled)
			} else {
				tags.Add(TagConjunct)
			}
		}
	}

	if (tags.Has(TagConsonant) || tags.Has(TagVowel)) &&
		!tags.Has(TagLongVowel) && !tags.Has(TagAnusvara) && !tags.Has(TagVisarga) {
		tags.Add(TagShortVowel)
	}

	// letter-class closure over every rune
	for _, r := range rs {
		addLetterClasses(tags, r)
	}

	// closure over the independent vowels voiced by dependent signs
	foundDependent := false
	for _, r := range rs {
		if v, ok := script.IndependentVowel(r); ok {
			foundDependent = true
			addLetterClasses(tags, v)
		}
	}

	// an unmarked consonant carries the inherent అ
	if hasConsonant && !foundDependent && rs[len(rs)-1] != script.Virama {
		addLetterClasses(tags, 'అ')
	}

	return tags
}

func addLetterClasses(tags TagSet, r rune) {
	for _, class := range script.LetterClasses(r) {
		tags.Add(Tag(class))
	}
}
