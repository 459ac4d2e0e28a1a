package similarity

import (
	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/prosody"
	"github.com/kavyateja/chandassu/script"
)

// WordAnalysis is the per-word half of a comparison.
type WordAnalysis struct {
	Word     string   // sanitized input
	Aksharas []string // weight-bearing aksharas
	Tags     akshara.TagSet
	Weights  []prosody.Weight
	Pattern  string
}

// Comparison is the result of CompareWords.
type Comparison struct {
	Word1, Word2 WordAnalysis

	CommonTags    []akshara.Tag
	UniqueToWord1 []akshara.Tag
	UniqueToWord2 []akshara.Tag

	TagSimilarity float64
	TagDistance   float64

	BigramSimilarity float64
	BigramDistance   float64

	CommonRun []prosody.Weight
}

// AnalyzeWord sanitizes and breaks down one word for comparison.
func AnalyzeWord(word string) WordAnalysis {
	clean := script.Sanitize(word)
	units := akshara.Segment(clean)
	weights := prosody.AssignWeights(units)

	tags := akshara.NewTagSet()
	for _, u := range units {
		if akshara.IsIgnorable(u) {
			continue
		}
		for t := range akshara.Classify(u) {
			tags.Add(t)
		}
	}
	return WordAnalysis{
		Word:     clean,
		Aksharas: akshara.Pure(units),
		Tags:     tags,
		Weights:  prosody.Pure(weights),
		Pattern:  prosody.Pattern(weights),
	}
}

// CompareWords analyzes two words and reports every similarity measure
// at once: tag overlap, rhythm bigram overlap and the longest shared
// weight run.
func CompareWords(word1, word2 string) Comparison {
	c := Comparison{
		Word1: AnalyzeWord(word1),
		Word2: AnalyzeWord(word2),
	}

	for _, t := range c.Word1.Tags.Sorted() {
		if c.Word2.Tags.Has(t) {
			c.CommonTags = append(c.CommonTags, t)
		} else {
			c.UniqueToWord1 = append(c.UniqueToWord1, t)
		}
	}
	for _, t := range c.Word2.Tags.Sorted() {
		if !c.Word1.Tags.Has(t) {
			c.UniqueToWord2 = append(c.UniqueToWord2, t)
		}
	}

	c.TagSimilarity, c.TagDistance = TagJaccard(c.Word1.Tags, c.Word2.Tags)
	c.BigramSimilarity, c.BigramDistance = WeightBigramJaccard(c.Word1.Weights, c.Word2.Weights)
	c.CommonRun = LongestCommonRun(c.Word1.Weights, c.Word2.Weights)
	return c
}
