// Package chandassu is an analysis toolkit for classical Telugu prosody
// (chandassu), from akshara segmentation up to full dwipada couplet
// validation.
//
// 🚀 What is chandassu?
//
//	A pure-Go library that brings together:
//		• Symbol tables: exhaustive Telugu code-point classification & vargas
//		• Akshara segmentation: lossless orthographic syllable splitting
//		• Phonological tagging: vowel/consonant/conjunct/varga tag sets
//		• Guru-Laghu assignment: two-pass metrical weight marking
//		• Gana analysis: dwipada partitioning + exhaustive decomposition
//		• Yati & Prasa: alliteration and rhyme matching with quality tiers
//		• Similarity: Jaccard over tags & weight bigrams, common-run DP
//
// ✨ Why choose chandassu?
//
//   - Faithful rules – the hand-curated dwipada tradition, not a heuristic
//   - Pure functions – no shared state, safe for concurrent callers
//   - Typed results – expected absences are values, never panics
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under focused subpackages:
//
//	script/     - code-point sets, vargas, yati-maitri groups, sanitizer
//	akshara/    - Segment, Classify and letter helpers
//	prosody/    - Weight markers and AssignWeights
//	gana/       - pattern tables, PartitionDwipadaLine, EnumerateDecompositions
//	dwipada/    - MatchYati, MatchPrasa, AnalyzeCouplet, scoring
//	similarity/ - TagJaccard, WeightBigramJaccard, LongestCommonRun
//	profile/    - whole-text linguistic & prosodic profiles
//
// Quick sketch:
//
//	aks := akshara.Segment("రాముడు")        // [రా ము డు]
//	ws := prosody.AssignWeights(aks)         // [U I I]
//	p := gana.PartitionDwipadaLine(ws, aks)  // nil: line too short for dwipada
//
// Dive into the per-package docs for rule details and worked examples.
//
//	go get github.com/kavyateja/chandassu
package chandassu
