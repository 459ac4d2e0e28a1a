// Package similarity measures how alike two Telugu words sound. 🔍
//
// Three complementary measures are offered:
//
//   - TagJaccard compares the phonological tag sets of two words; an
//     empty union scores 0, since two words with no describable
//     features share nothing.
//   - WeightBigramJaccard compares the adjacent-pair structure of two
//     guru-laghu sequences; an empty union scores 1, since two
//     sequences too short to form bigrams are rhythmically
//     indistinguishable. The asymmetry with TagJaccard is deliberate.
//   - LongestCommonRun finds the longest contiguous run of identical
//     weight markers shared by two sequences.
//
// CompareWords bundles all three over a pair of raw words.
package similarity
