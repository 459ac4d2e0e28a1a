// Package akshara splits Telugu text into aksharas (orthographic
// syllables) and classifies each one with phonological tags.
//
// Segmentation is a two-pass, left-to-right scan:
//
//  1. Coarse pass: each ignorable rune becomes its own unit; a consonant
//     greedily consumes its conjunct chain (virama + consonant pairs) and
//     trailing vowel signs/diacritics; an independent vowel consumes at
//     most one following diacritic.
//  2. Merge pass: a bare word-final consonant (consonant + virama, the
//     pollu form) is folded into the preceding unit, since it carries no
//     audible vowel of its own.
//
// The segmentation is a partition: concatenating the returned units
// always reproduces the input exactly. No Unicode normalization is
// performed; feed pre-sanitized text (see script.Sanitize).
//
// Classify derives a TagSet from an akshara's text alone: structural
// tags (vowel/consonant presence, length, conjuncts, anusvara, visarga)
// plus the full letter-class closure of every letter it contains,
// including the vowels voiced by dependent signs and the implicit
// inherent అ of an unmarked consonant.
//
// Everything here is a pure function; same input, same output, no state.
package akshara
