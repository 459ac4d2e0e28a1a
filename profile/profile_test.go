package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/profile"
)

func TestAnalyze_Word(t *testing.T) {
	p := profile.Analyze("అమ్మ")

	assert.Equal(t, []string{"అ", "మ్మ"}, p.Aksharas)
	assert.Equal(t, "UI", p.Pattern)

	assert.Equal(t, 2, p.Statistics.TotalAksharas)
	assert.Equal(t, 2, p.Statistics.UniqueAksharas)
	assert.Equal(t, 1, p.Statistics.DoubledCount)
	assert.Equal(t, 0, p.Statistics.ConjunctCount)
	assert.Equal(t, 50.0, p.Statistics.ComplexityScore, "one of two aksharas carries a cluster")

	assert.Equal(t, 1, p.Rhythm.GuruCount)
	assert.Equal(t, 1, p.Rhythm.LaghuCount)
	assert.Equal(t, 1.0, p.Rhythm.GuruToLaghuRatio)
	assert.Equal(t, 50.0, p.Rhythm.GuruPercentage)

	require.NotEmpty(t, p.Decompositions)
	for _, d := range p.Decompositions {
		assert.Equal(t, "UI", d.Pattern())
	}
	assert.NotEmpty(t, p.Rhythm.MostCommonGana)
}

func TestAnalyze_BreakdownCounts(t *testing.T) {
	// ము appears twice, so the breakdown folds it with count 2
	p := profile.Analyze("ముద్దు ముచ్చట")

	var mu *profile.AksharaInfo
	for i := range p.Breakdown {
		if p.Breakdown[i].Akshara == "ము" {
			mu = &p.Breakdown[i]
		}
	}
	require.NotNil(t, mu)
	assert.Equal(t, 2, mu.Count)
	assert.Less(t, p.Statistics.UniqueAksharas, p.Statistics.TotalAksharas)

	// tag counts weight by occurrence: both ము carry the consonant tag
	assert.GreaterOrEqual(t, p.TagCounts[akshara.TagConsonant], 2)
}

func TestAnalyze_DecompositionCap(t *testing.T) {
	const line = "సౌధాగ్రముల యందు సదనంబు లందు"

	p := profile.Analyze(line, profile.WithMaxDecompositions(3))
	assert.Len(t, p.Decompositions, 3)
	assert.True(t, p.Truncated)
	assert.Greater(t, p.Rhythm.GanaVariety, 0,
		"usage figures come from the full enumeration, not the cap")

	p = profile.Analyze(line, profile.WithoutDecompositions())
	assert.Empty(t, p.Decompositions)
	assert.False(t, p.Truncated)
	assert.Empty(t, p.Rhythm.MostCommonGana)
	assert.Equal(t, 13, p.Rhythm.TotalSyllables, "rhythm figures survive the skip")
}

func TestAnalyze_Distributions(t *testing.T) {
	p := profile.Analyze("కమలము")

	assert.Greater(t, p.VargaDistribution["ka-vargamu"], 0, "క counts in its varga row")
	assert.Greater(t, p.ArticulationDistribution["oshthyamulu"], 0, "మ is labial")
	assert.Contains(t, p.VargaDistribution, "antasthamulu")
}

func TestAnalyze_EmptyInput(t *testing.T) {
	p := profile.Analyze("")
	assert.Empty(t, p.Aksharas)
	assert.Equal(t, 0, p.Statistics.TotalAksharas)
	assert.Equal(t, 0.0, p.Statistics.ComplexityScore)
	assert.Equal(t, 0.0, p.Rhythm.GuruPercentage)
	require.NotEmpty(t, p.Decompositions, "the empty pattern has the empty decomposition")
	assert.Empty(t, p.Decompositions[0])
}

func TestAnalyze_SanitizesInput(t *testing.T) {
	p := profile.Analyze("రాముడు! (Rama)")
	assert.NotContains(t, p.Text, "!")
	assert.Equal(t, []string{"రా", "ము", "డు"}, p.Aksharas)
}
