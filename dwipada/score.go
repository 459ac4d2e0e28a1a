package dwipada

import (
	"math"

	"github.com/kavyateja/chandassu/gana"
)

// Fixed component weights of the overall score. Gana structure carries
// the most, prasa rhyme next, yati alliteration the rest.
const (
	WeightGana  = 0.40
	WeightPrasa = 0.35
	WeightYati  = 0.25
)

// Scorecard is the weighted percentage breakdown of a couplet.
type Scorecard struct {
	Overall float64

	GanaLine1   float64
	GanaLine2   float64
	GanaAverage float64

	Prasa float64

	YatiLine1   float64
	YatiLine2   float64
	YatiAverage float64
}

// GanaScore grades one line's partition: 25 points per valid gana
// position. A nil partition scores zero.
func GanaScore(p *gana.Partition) float64 {
	if p == nil {
		return 0
	}
	return float64(p.Matched) / 4 * 100
}

// PrasaScore is binary: 100 on a match, otherwise 0. An insufficient
// verdict also scores 0.
func PrasaScore(v PrasaVerdict) float64 {
	if v.Match {
		return 100
	}
	return 0
}

// YatiScore grades one yati verdict: 100 exact, 70 for a group match,
// 0 otherwise. A nil verdict (letters unavailable) scores 0.
func YatiScore(v *YatiVerdict) float64 {
	if v == nil {
		return 0
	}
	switch v.Quality {
	case YatiExact:
		return 100
	case YatiGroup:
		return 70
	default:
		return 0
	}
}

// CombineScores folds the component scores into one weighted total,
// averaging the per-line gana and yati scores. All reported figures are
// rounded to one decimal place.
func CombineScores(gana1, gana2, prasa, yati1, yati2 float64) Scorecard {
	avgGana := (gana1 + gana2) / 2
	avgYati := (yati1 + yati2) / 2
	overall := avgGana*WeightGana + prasa*WeightPrasa + avgYati*WeightYati

	return Scorecard{
		Overall:     round1(overall),
		GanaLine1:   gana1,
		GanaLine2:   gana2,
		GanaAverage: round1(avgGana),
		Prasa:       prasa,
		YatiLine1:   yati1,
		YatiLine2:   yati2,
		YatiAverage: round1(avgYati),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
