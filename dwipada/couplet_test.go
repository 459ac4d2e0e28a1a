package dwipada_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyateja/chandassu/dwipada"
	"github.com/kavyateja/chandassu/gana"
)

const referenceCouplet = "సౌధాగ్రముల యందు సదనంబు లందు\nవీధుల యందును వెఱవొప్ప నిలిచి"

// TestAnalyzeCouplet_Reference runs the full pipeline over a classical
// couplet that satisfies every rule.
func TestAnalyzeCouplet_Reference(t *testing.T) {
	c, err := dwipada.AnalyzeCouplet(referenceCouplet)
	require.NoError(t, err)

	assert.True(t, c.Valid)
	assert.Equal(t, 100.0, c.Score.Overall)

	assert.True(t, c.Line1.Partition.FullyValid)
	assert.True(t, c.Line2.Partition.FullyValid)
	assert.Equal(t, [4]int{3, 3, 4, 3}, c.Line2.Partition.Lengths)

	assert.True(t, c.Prasa.Match)
	require.NotNil(t, c.Yati1)
	require.NotNil(t, c.Yati2)
	assert.Equal(t, dwipada.YatiExact, c.Yati1.Quality, "స opens both the line and its third gana")
	assert.Equal(t, dwipada.YatiExact, c.Yati2.Quality)
}

// TestAnalyzeLine_Breakdown checks the per-line fields in isolation.
func TestAnalyzeLine_Breakdown(t *testing.T) {
	l := dwipada.AnalyzeLine("  సౌధాగ్రముల యందు సదనంబు లందు  ")

	assert.Equal(t, "సౌధాగ్రముల యందు సదనంబు లందు", l.Line, "surrounding space is trimmed")
	assert.Len(t, l.Aksharas, 13)
	assert.Len(t, l.Weights, len(l.Aksharas))
	assert.Equal(t, "UUIIIUIIIUIUI", l.Pattern)
	assert.Equal(t, "స", l.FirstLetter)
	assert.Equal(t, "ధ", l.SecondConsonant)
	assert.Equal(t, "స", l.ThirdGanaLetter)
	assert.True(t, l.ValidGanaSequence())
}

// TestAnalyzeLine_Short: a word-sized input still analyzes, with no
// partition and no third-gana letter.
func TestAnalyzeLine_Short(t *testing.T) {
	l := dwipada.AnalyzeLine("రాముడు")
	assert.Nil(t, l.Partition)
	assert.False(t, l.ValidGanaSequence())
	assert.Equal(t, "ర", l.FirstLetter)
	assert.Empty(t, l.ThirdGanaLetter)

	l = dwipada.AnalyzeLine("")
	assert.Empty(t, l.FirstLetter)
	assert.Empty(t, l.Aksharas)
}

// TestAnalyzeCouplet_LineCount: fewer than two non-empty lines is the
// one hard error in the package.
func TestAnalyzeCouplet_LineCount(t *testing.T) {
	_, err := dwipada.AnalyzeCouplet("సౌధాగ్రముల యందు సదనంబు లందు")
	assert.ErrorIs(t, err, dwipada.ErrLineCount)

	_, err = dwipada.AnalyzeCouplet("\n \n")
	assert.ErrorIs(t, err, dwipada.ErrLineCount)

	// a third line is ignored, not an error
	c, err := dwipada.AnalyzeCouplet(referenceCouplet + "\nఅదనపు పాదము")
	require.NoError(t, err)
	assert.True(t, c.Valid)
}

// TestScores covers the component scoring rules.
func TestScores(t *testing.T) {
	assert.Equal(t, 0.0, dwipada.GanaScore(nil))

	p := &gana.Partition{Matched: 3}
	assert.Equal(t, 75.0, dwipada.GanaScore(p))

	assert.Equal(t, 100.0, dwipada.PrasaScore(dwipada.PrasaVerdict{Match: true}))
	assert.Equal(t, 0.0, dwipada.PrasaScore(dwipada.PrasaVerdict{Insufficient: true}))

	assert.Equal(t, 0.0, dwipada.YatiScore(nil))
	assert.Equal(t, 70.0, dwipada.YatiScore(&dwipada.YatiVerdict{Match: true, Quality: dwipada.YatiGroup}))
	assert.Equal(t, 100.0, dwipada.YatiScore(&dwipada.YatiVerdict{Match: true, Quality: dwipada.YatiExact}))
}

// TestCombineScores checks the weighted average and rounding.
func TestCombineScores(t *testing.T) {
	s := dwipada.CombineScores(100, 50, 100, 70, 0)

	assert.Equal(t, 75.0, s.GanaAverage)
	assert.Equal(t, 35.0, s.YatiAverage)
	// 75*0.40 + 100*0.35 + 35*0.25 = 30 + 35 + 8.75
	assert.Equal(t, 73.8, s.Overall)

	perfect := dwipada.CombineScores(100, 100, 100, 100, 100)
	assert.Equal(t, 100.0, perfect.Overall)
}
