package prosody

import (
	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/script"
)

// diphthongs are inherently heavy regardless of vowel-length tables:
// the independent vowels ఐ and ఔ and their dependent signs.
var diphthongs = map[rune]struct{}{
	'ఐ': {}, 'ఔ': {}, 'ై': {}, 'ౌ': {},
}

// AssignWeights computes the weight of every unit in order. The result
// has the same length as units; ignorable units map to Empty. The
// contextual guru rule looks through ignorable units, so a light
// syllable at a word boundary is still closed by a following conjunct.
func AssignWeights(units []string) []Weight {
	weights := make([]Weight, len(units))
	tags := make([]akshara.TagSet, len(units))

	// pass 1: intrinsic weight of each unit in isolation
	for i, u := range units {
		if akshara.IsIgnorable(u) {
			weights[i] = Empty
			continue
		}
		tags[i] = akshara.Classify(u)
		if intrinsicGuru(u, tags[i]) {
			weights[i] = Guru
		} else {
			weights[i] = Laghu
		}
	}

	// pass 2: a laghu before a conjunct or doubled consonant turns guru
	for i := range units {
		if weights[i] != Laghu {
			continue
		}
		for j := i + 1; j < len(units); j++ {
			if weights[j] == Empty {
				continue
			}
			if tags[j].Has(akshara.TagConjunct) || tags[j].Has(akshara.TagDoubled) {
				weights[i] = Guru
			}
			break
		}
	}
	return weights
}

func intrinsicGuru(unit string, tags akshara.TagSet) bool {
	if tags.Has(akshara.TagLongVowel) || tags.Has(akshara.TagAnusvara) || tags.Has(akshara.TagVisarga) {
		return true
	}
	rs := []rune(unit)
	for _, r := range rs {
		if _, ok := diphthongs[r]; ok {
			return true
		}
	}
	// a folded pollu leaves the syllable closed
	return len(rs) > 0 && rs[len(rs)-1] == script.Virama
}

// LinePattern segments text and returns its weight pattern in one step.
func LinePattern(text string) string {
	units := akshara.Segment(text)
	return Pattern(AssignWeights(units))
}
