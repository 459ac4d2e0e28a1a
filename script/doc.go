// Package script holds the static classification data for the Telugu
// script: code-point sets for consonants, vowels, vowel signs and
// diacritics, the dependent→independent vowel mapping, consonant vargas
// (place of articulation), the letter-class closure used by the
// phonological classifier, and the yati-maitri equivalence groups.
//
// All tables are process-wide, immutable, and built once at package
// initialization. Every query is an O(1) set-membership or map lookup,
// exposed only through read-only functions. Unknown code points are never
// an error; they simply belong to none of the classes.
//
// The package also provides Sanitize, which restricts arbitrary input to
// the Telugu block plus whitespace, matching the sanitize-then-analyze
// ordering the analyzers expect.
package script
