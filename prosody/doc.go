// Package prosody assigns metrical weight (guru/laghu) to segmented
// akshara sequences. 🪶
//
// Every syllable of Telugu verse is either guru (heavy, marked U) or
// laghu (light, marked I), and the sequence of these marks is the raw
// material of all chandassu analysis. Weight is decided in two passes:
//
//  1. Intrinsic pass. An akshara is guru on its own when it carries a
//     long vowel, a diphthong (ఐ, ఔ and their dependent signs), an
//     anusvara, a visarga, or a folded word-final consonant (pollu).
//  2. Contextual pass. A light akshara becomes guru when the next
//     weight-bearing akshara opens with a conjunct or doubled
//     consonant, because the cluster closes the preceding syllable.
//
// Ignorable units (spaces, newlines) receive the Empty weight and are
// excluded from counting and pattern formation, so callers can feed the
// full unit sequence of a line and keep positions aligned with the
// original text.
//
// All functions are pure: no I/O, no globals mutated, same input same
// output. ✨
package prosody
