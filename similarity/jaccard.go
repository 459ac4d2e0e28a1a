package similarity

import (
	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/prosody"
)

// TagJaccard computes the Jaccard similarity and distance of two tag
// sets. An empty union yields similarity 0.
func TagJaccard(a, b akshara.TagSet) (similarity, distance float64) {
	inter, union := 0, 0
	for tag := range a {
		union++
		if b.Has(tag) {
			inter++
		}
	}
	for tag := range b {
		if !a.Has(tag) {
			union++
		}
	}
	if union == 0 {
		return 0, 1
	}
	similarity = float64(inter) / float64(union)
	return similarity, 1 - similarity
}

// WeightBigramJaccard computes the Jaccard similarity and distance of
// the adjacent-marker-pair sets of two weight sequences. A sequence
// with fewer than two weight-bearing markers contributes the empty
// set; an empty union yields similarity 1 (distance 0), the opposite
// convention from TagJaccard, kept on purpose.
func WeightBigramJaccard(a, b []prosody.Weight) (similarity, distance float64) {
	ba, bb := bigrams(a), bigrams(b)
	inter, union := 0, 0
	for g := range ba {
		union++
		if _, ok := bb[g]; ok {
			inter++
		}
	}
	for g := range bb {
		if _, ok := ba[g]; !ok {
			union++
		}
	}
	if union == 0 {
		return 1, 0
	}
	similarity = float64(inter) / float64(union)
	return similarity, 1 - similarity
}

func bigrams(weights []prosody.Weight) map[string]struct{} {
	pure := prosody.Pure(weights)
	out := make(map[string]struct{})
	for i := 0; i+1 < len(pure); i++ {
		out[pure[i].String()+pure[i+1].String()] = struct{}{}
	}
	return out
}
