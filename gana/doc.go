// Package gana names and arranges metrical feet (ganas) over guru-laghu
// weight sequences. 🎼
//
// A gana is a fixed pattern of 1 to 5 weight markers with a traditional
// name, grouped into families: Ekaakshara, Rendakshara, Moodakshara,
// Surya, Indra and Chandra. The same pattern string can carry different
// names in different families (UII is Bha both as a Moodakshara and as
// an Indra gana); the tables here tolerate that ambiguity instead of
// treating it as a defect.
//
// Two consumers sit on top of the tables:
//
//   - PartitionDwipadaLine validates a line against the dwipada
//     template of three Indra ganas followed by one Surya gana, trying
//     all sixteen length combinations and reporting either the first
//     fully valid split or the best partial one with per-position
//     diagnostics.
//   - EnumerateDecompositions lists every way an arbitrary weight
//     sequence tiles into named ganas from the full table, using a
//     per-call memoization cache to keep the recursion tractable.
//
// Everything in this package is a pure function over its arguments;
// the enumerator's cache lives and dies inside a single call. 🚀
package gana
