package profile

import (
	"math"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/gana"
	"github.com/kavyateja/chandassu/prosody"
	"github.com/kavyateja/chandassu/script"
)

// AksharaInfo is one distinct akshara with its tags and occurrence
// count, in first-appearance order.
type AksharaInfo struct {
	Akshara string
	Tags    []akshara.Tag
	Count   int
}

// Statistics aggregates the classifier's counts over a whole text.
// Counts are tag occurrences weighted by akshara frequency.
type Statistics struct {
	TotalAksharas  int
	UniqueAksharas int

	VowelCount            int
	ConsonantCount        int
	VowelToConsonantRatio float64

	LongVowelCount  int
	ShortVowelCount int
	ConjunctCount   int
	DoubledCount    int
	AnusvaraCount   int
	VisargaCount    int

	// ComplexityScore is the share of cluster-bearing aksharas, as a
	// percentage of the total.
	ComplexityScore float64
}

// Rhythm aggregates the guru/laghu figures of a text.
type Rhythm struct {
	TotalSyllables   int
	GuruCount        int
	LaghuCount       int
	GuruToLaghuRatio float64
	GuruPercentage   float64
	LaghuPercentage  float64

	// MostCommonGana is the gana name appearing most often across the
	// enumerated decompositions, "" when enumeration is skipped or
	// finds nothing.
	MostCommonGana string
	// GanaVariety counts the distinct gana names seen.
	GanaVariety int
}

// Profile is the complete analysis of one text.
type Profile struct {
	Text     string   // sanitized input
	Aksharas []string // weight-bearing aksharas, repeats included

	Breakdown []AksharaInfo
	TagCounts map[akshara.Tag]int

	Weights []prosody.Weight // parallel to Aksharas
	Pattern string

	// Decompositions holds up to MaxDecompositions tilings of the
	// weight pattern; Truncated marks that more existed.
	Decompositions []gana.Decomposition
	Truncated      bool

	Statistics Statistics
	Rhythm     Rhythm

	VargaDistribution        map[string]int
	ArticulationDistribution map[string]int
}

// Analyze profiles a sanitized text end to end.
func Analyze(text string, opts ...Option) *Profile {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDecompositions < 1 {
		o.MaxDecompositions = DefaultMaxDecompositions
	}

	clean := script.Sanitize(text)
	units := akshara.Segment(clean)
	weights := prosody.AssignWeights(units)

	p := &Profile{
		Text:      clean,
		Aksharas:  akshara.Pure(units),
		Weights:   prosody.Pure(weights),
		Pattern:   prosody.Pattern(weights),
		TagCounts: make(map[akshara.Tag]int),
	}

	p.buildBreakdown()

	if !o.SkipDecompositions {
		decs := gana.EnumerateDecompositions(weights)
		p.Rhythm.MostCommonGana, p.Rhythm.GanaVariety = ganaUsage(decs)
		if len(decs) > o.MaxDecompositions {
			decs = decs[:o.MaxDecompositions]
			p.Truncated = true
		}
		p.Decompositions = decs
	}

	p.buildStatistics()
	p.buildRhythm()
	p.buildDistributions()
	return p
}

func (p *Profile) buildBreakdown() {
	index := make(map[string]int)
	for _, aksh := range p.Aksharas {
		if i, seen := index[aksh]; seen {
			p.Breakdown[i].Count++
			continue
		}
		index[aksh] = len(p.Breakdown)
		p.Breakdown = append(p.Breakdown, AksharaInfo{
			Akshara: aksh,
			Tags:    akshara.Classify(aksh).Sorted(),
			Count:   1,
		})
	}
	for _, info := range p.Breakdown {
		for _, tag := range info.Tags {
			p.TagCounts[tag] += info.Count
		}
	}
}

func (p *Profile) buildStatistics() {
	s := &p.Statistics
	s.TotalAksharas = len(p.Aksharas)
	s.UniqueAksharas = len(p.Breakdown)
	s.VowelCount = p.TagCounts[akshara.TagVowel]
	s.ConsonantCount = p.TagCounts[akshara.TagConsonant]
	s.LongVowelCount = p.TagCounts[akshara.TagLongVowel]
	s.ShortVowelCount = p.TagCounts[akshara.TagShortVowel]
	s.ConjunctCount = p.TagCounts[akshara.TagConjunct]
	s.DoubledCount = p.TagCounts[akshara.TagDoubled]
	s.AnusvaraCount = p.TagCounts[akshara.TagAnusvara]
	s.VisargaCount = p.TagCounts[akshara.TagVisarga]

	if s.ConsonantCount > 0 {
		s.VowelToConsonantRatio = round3(float64(s.VowelCount) / float64(s.ConsonantCount))
	}
	if s.TotalAksharas > 0 {
		clusters := float64(s.ConjunctCount + s.DoubledCount)
		s.ComplexityScore = round2(clusters / float64(s.TotalAksharas) * 100)
	}
}

func (p *Profile) buildRhythm() {
	r := &p.Rhythm
	r.GuruCount, r.LaghuCount = prosody.Counts(p.Weights)
	r.TotalSyllables = len(p.Weights)
	if r.LaghuCount > 0 {
		r.GuruToLaghuRatio = round3(float64(r.GuruCount) / float64(r.LaghuCount))
	}
	if r.TotalSyllables > 0 {
		r.GuruPercentage = round2(float64(r.GuruCount) / float64(r.TotalSyllables) * 100)
		r.LaghuPercentage = round2(float64(r.LaghuCount) / float64(r.TotalSyllables) * 100)
	}
}

// ganaUsage tallies names across every decomposition before truncation.
// The most frequent name wins; ties go to the first name reaching the
// winning count in enumeration order.
func ganaUsage(decs []gana.Decomposition) (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, d := range decs {
		for _, u := range d {
			if counts[u.Name] == 0 {
				order = append(order, u.Name)
			}
			counts[u.Name]++
		}
	}
	best, bestCount := "", 0
	for _, name := range order {
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best, len(counts)
}

// distribution class lists, in reporting order.
var vargaClasses = []string{
	script.ClassKaVarga, script.ClassChaVarga, script.ClassTaVarga,
	script.ClassThaVarga, script.ClassPaVarga,
	script.ClassSparsha, script.ClassUshma, script.ClassAntastha,
}

var articulationClasses = []string{
	script.ClassKanthya, script.ClassTaalavya, script.ClassMoordhanya,
	script.ClassDantya, script.ClassOshthya, script.ClassAnunaasika,
	script.ClassKanthataalavya, script.ClassKanthoshthya, script.ClassDantoshthya,
}

func (p *Profile) buildDistributions() {
	p.VargaDistribution = make(map[string]int, len(vargaClasses))
	for _, c := range vargaClasses {
		p.VargaDistribution[c] = p.TagCounts[akshara.Tag(c)]
	}
	p.ArticulationDistribution = make(map[string]int, len(articulationClasses))
	for _, c := range articulationClasses {
		p.ArticulationDistribution[c] = p.TagCounts[akshara.Tag(c)]
	}
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
