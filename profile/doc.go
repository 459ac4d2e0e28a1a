// Package profile builds a full prosodic and phonological profile of a
// Telugu text in one call. 📊
//
// Analyze runs the whole pipeline: sanitization, segmentation, per-
// akshara classification, weight assignment and gana decomposition,
// then aggregates the results into statistics blocks (letter counts
// and ratios, varga and articulation distributions, guru/laghu rhythm
// figures). It is the entry point reporting tools and the HTTP server
// build on.
//
// Behavior is tuned through functional options:
//
//	p := profile.Analyze(text,
//	        profile.WithMaxDecompositions(10))
//
// The decomposition enumeration is exponential in the worst case, so
// it is capped (default 50) and can be skipped entirely with
// WithoutDecompositions for long texts. ⚡
package profile
