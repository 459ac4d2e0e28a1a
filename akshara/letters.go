package akshara

import "github.com/kavyateja/chandassu/script"

// FirstLetter returns the first letter of an akshara as a string, or ""
// for empty input. This is the letter the yati rule inspects.
func FirstLetter(aksh string) string {
	for _, r := range aksh {
		return string(r)
	}
	return ""
}

// BaseConsonant returns the base consonant of an akshara: its first
// rune, when that rune is a consonant. The prasa rule compares these.
func BaseConsonant(aksh string) (string, bool) {
	for _, r := range aksh {
		if script.IsConsonant(r) {
			return string(r), true
		}
		return "", false
	}
	return "", false
}

// Vowel extracts the vowel component of an akshara: the first dependent
// vowel sign if present, else a leading independent vowel, else the
// implicit inherent అ of an unmarked consonant (implicit=true). An
// akshara with no vowel at all (e.g. a bare virama cluster) yields
// ("", false).
func Vowel(aksh string) (vowel string, implicit bool) {
	rs := []rune(aksh)
	if len(rs) == 0 {
		return "", false
	}
	for _, r := range rs {
		if script.IsDependentVowel(r) {
			return string(r), false
		}
	}
	if script.IsIndependentVowel(rs[0]) {
		return string(rs[0]), false
	}
	for _, r := range rs {
		if script.IsConsonant(r) {
			if rs[len(rs)-1] == script.Virama {
				return "", false
			}
			return "అ", true
		}
	}
	return "", false
}
