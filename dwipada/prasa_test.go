package dwipada_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavyateja/chandassu/dwipada"
)

func TestMatchPrasa_Match(t *testing.T) {
	// both lines carry ధ in the second akshara
	v := dwipada.MatchPrasa("సౌధాగ్రముల యందు సదనంబు లందు", "వీధుల యందును వెఱవొప్ప నిలిచి")
	assert.True(t, v.Match)
	assert.False(t, v.Insufficient)
	assert.Equal(t, "ధా", v.Akshara1)
	assert.Equal(t, "ధు", v.Akshara2)
	assert.Equal(t, "ధ", v.Consonant1)
	assert.Equal(t, "ధ", v.Consonant2)
	assert.Empty(t, v.Explanation, "a match needs no diagnosis")
}

func TestMatchPrasa_MismatchDiagnostics(t *testing.T) {
	v := dwipada.MatchPrasa("సౌధాగ్రముల యందు", "అమల చూడుము")
	assert.False(t, v.Match)
	assert.False(t, v.Insufficient)
	assert.Equal(t, "ధ", v.Consonant1)
	assert.Equal(t, "మ", v.Consonant2)
	assert.NotEmpty(t, v.Varga1)
	assert.NotEmpty(t, v.Varga2)
	assert.NotEqual(t, v.Varga1, v.Varga2)
	assert.Contains(t, v.Explanation, "different vargas")
}

func TestMatchPrasa_Insufficient(t *testing.T) {
	v := dwipada.MatchPrasa("క", "ర")
	assert.True(t, v.Insufficient, "one akshara per line cannot carry prasa")
	assert.False(t, v.Match)

	v = dwipada.MatchPrasa("", "")
	assert.True(t, v.Insufficient)
}

func TestMatchPrasaAksharas(t *testing.T) {
	v := dwipada.MatchPrasaAksharas("ధా", "ధు")
	assert.True(t, v.Match)

	// same varga is still a mismatch: prasa wants the exact consonant
	v = dwipada.MatchPrasaAksharas("తా", "దా")
	assert.False(t, v.Match)
	assert.Contains(t, v.Explanation, "exact match")

	// a vowel-led akshara has no base consonant to compare
	v = dwipada.MatchPrasaAksharas("అం", "ధు")
	assert.False(t, v.Match)
	assert.Contains(t, v.Explanation, "lack a base consonant")

	// the vowel breakdown marks the implicit అ
	v = dwipada.MatchPrasaAksharas("క", "ధు")
	assert.Equal(t, "అ (implicit)", v.Vowel1)
	assert.Equal(t, "ు", v.Vowel2)
}
