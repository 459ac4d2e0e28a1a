package dwipada

import (
	"fmt"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/script"
)

// PrasaVerdict reports the rhyme check between two lines: the base
// consonant of the second akshara must agree.
type PrasaVerdict struct {
	Match bool
	// Insufficient marks a line with fewer than two weight-bearing
	// aksharas. It is a distinguished outcome, not a failed match.
	Insufficient bool

	Akshara1, Akshara2     string // the second akshara of each line
	Consonant1, Consonant2 string // their base consonants, "" when absent
	Varga1, Varga2         string // articulation rows, filled on mismatch
	Vowel1, Vowel2         string // vowel components, filled on mismatch
	Explanation            string // human-readable mismatch diagnosis
}

// MatchPrasa segments both lines and compares the base consonants of
// their second non-ignorable aksharas. Lines too short to carry a
// second akshara yield an Insufficient verdict.
func MatchPrasa(line1, line2 string) PrasaVerdict {
	pure1 := akshara.Pure(akshara.Segment(line1))
	pure2 := akshara.Pure(akshara.Segment(line2))
	if len(pure1) < 2 || len(pure2) < 2 {
		return PrasaVerdict{Insufficient: true}
	}
	return MatchPrasaAksharas(pure1[1], pure2[1])
}

// MatchPrasaAksharas compares one akshara pair directly, for callers
// that have already segmented (rhyme dictionaries, suggestion tools).
func MatchPrasaAksharas(a1, a2 string) PrasaVerdict {
	v := PrasaVerdict{Akshara1: a1, Akshara2: a2}
	v.Consonant1, _ = akshara.BaseConsonant(a1)
	v.Consonant2, _ = akshara.BaseConsonant(a2)

	if v.Consonant1 != "" && v.Consonant1 == v.Consonant2 {
		v.Match = true
		return v
	}

	v.Varga1, _ = script.ConsonantVarga(v.Consonant1)
	v.Varga2, _ = script.ConsonantVarga(v.Consonant2)
	v.Vowel1 = describeVowel(a1)
	v.Vowel2 = describeVowel(a2)
	v.Explanation = explainPrasaMismatch(v)
	return v
}

func describeVowel(aksh string) string {
	v, implicit := akshara.Vowel(aksh)
	if implicit {
		return v + " (implicit)"
	}
	return v
}

func explainPrasaMismatch(v PrasaVerdict) string {
	switch {
	case v.Consonant1 == "" || v.Consonant2 == "":
		return "one or both lines lack a base consonant in the second akshara"
	case v.Varga1 != "" && v.Varga1 == v.Varga2:
		return fmt.Sprintf("consonants %q and %q share the %s varga but prasa requires an exact match",
			v.Consonant1, v.Consonant2, v.Varga1)
	case v.Varga1 != "" && v.Varga2 != "":
		return fmt.Sprintf("consonants %q (%s) and %q (%s) come from different vargas",
			v.Consonant1, v.Varga1, v.Consonant2, v.Varga2)
	default:
		return fmt.Sprintf("consonants %q and %q do not match", v.Consonant1, v.Consonant2)
	}
}
