package akshara_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/script"
)

// TestClassify_Structural checks the structural tags on canonical shapes.
func TestClassify_Structural(t *testing.T) {
	tags := akshara.Classify("రా")
	assert.True(t, tags.Has(akshara.TagConsonant), "రా contains a consonant")
	assert.True(t, tags.Has(akshara.TagLongVowel), "ా is long")
	assert.False(t, tags.Has(akshara.TagShortVowel), "long excludes short")

	tags = akshara.Classify("అ")
	assert.True(t, tags.Has(akshara.TagVowel))
	assert.True(t, tags.Has(akshara.TagShortVowel))
	assert.False(t, tags.Has(akshara.TagConsonant))

	tags = akshara.Classify("ఆ")
	assert.True(t, tags.Has(akshara.TagVowel))
	assert.True(t, tags.Has(akshara.TagLongVowel), "ఆ is inherently long")

	tags = akshara.Classify("మ్మ")
	assert.True(t, tags.Has(akshara.TagDoubled), "మ్మ is a doubled consonant")
	assert.False(t, tags.Has(akshara.TagConjunct))

	tags = akshara.Classify("త్య")
	assert.True(t, tags.Has(akshara.TagConjunct), "త్య is a conjunct")
	assert.False(t, tags.Has(akshara.TagDoubled))

	tags = akshara.Classify("వం")
	assert.True(t, tags.Has(akshara.TagAnusvara))
	assert.False(t, tags.Has(akshara.TagShortVowel), "anusvara excludes short")

	tags = akshara.Classify("దుః")
	assert.True(t, tags.Has(akshara.TagVisarga))
}

// TestClassify_LetterClosure verifies the letter-class closure, including
// vowels reached through dependent signs and the implicit అ.
func TestClassify_LetterClosure(t *testing.T) {
	// కి: క (velar row) + ి voicing ఇ (palatal place)
	tags := akshara.Classify("కి")
	assert.True(t, tags.Has(akshara.Tag(script.ClassKaVarga)))
	assert.True(t, tags.Has(akshara.Tag(script.ClassTaalavya)), "ఇ via ి is palatal")

	// bare క carries the inherent అ, so the guttural vowel class applies
	tags = akshara.Classify("క")
	assert.True(t, tags.Has(akshara.Tag(script.ClassKanthya)), "inherent అ is guttural")

	// pollu-final cluster has no audible vowel, so no inherent అ closure
	// beyond what స itself contributes (స is dantya, not kanthya)
	tags = akshara.Classify("న్")
	assert.False(t, tags.Has(akshara.Tag(script.ClassKanthya)),
		"bare virama cluster carries no inherent అ")
}

// TestClassify_EmptyAndUnknown: malformed input degrades to an empty or
// minimal set, never a panic.
func TestClassify_EmptyAndUnknown(t *testing.T) {
	assert.Equal(t, 0, akshara.Classify("").Len())
	assert.NotPanics(t, func() { akshara.Classify("xyz") })
	assert.Equal(t, 0, akshara.Classify("xyz").Len(), "foreign runes carry no tags")
}

// TestClassify_Deterministic: same akshara, identical tag set, every time.
func TestClassify_Deterministic(t *testing.T) {
	first := akshara.Classify("ష్ణు").Sorted()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, akshara.Classify("ష్ణు").Sorted())
	}
}

// TestFirstLetterAndBaseConsonant covers the yati/prasa letter accessors.
func TestFirstLetterAndBaseConsonant(t *testing.T) {
	assert.Equal(t, "స", akshara.FirstLetter("సౌ"))
	assert.Equal(t, "", akshara.FirstLetter(""))

	c, ok := akshara.BaseConsonant("ధా")
	assert.True(t, ok)
	assert.Equal(t, "ధ", c)

	_, ok = akshara.BaseConsonant("అం")
	assert.False(t, ok, "vowel-led akshara has no base consonant")
	_, ok = akshara.BaseConsonant("")
	assert.False(t, ok)
}

// TestVowel covers explicit, independent, and implicit vowel extraction.
func TestVowel(t *testing.T) {
	v, implicit := akshara.Vowel("ధా")
	assert.Equal(t, "ా", v)
	assert.False(t, implicit)

	v, implicit = akshara.Vowel("అం")
	assert.Equal(t, "అ", v)
	assert.False(t, implicit)

	v, implicit = akshara.Vowel("క")
	assert.Equal(t, "అ", v)
	assert.True(t, implicit, "unmarked consonant voices the inherent అ")

	v, implicit = akshara.Vowel("న్")
	assert.Equal(t, "", v)
	assert.False(t, implicit, "pollu has no vowel at all")
}

// TestTagSet_Basics exercises the set helpers.
func TestTagSet_Basics(t *testing.T) {
	s := akshara.NewTagSet(akshara.TagVowel)
	s.Add(akshara.TagLongVowel)
	assert.True(t, s.Has(akshara.TagVowel))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []akshara.Tag{akshara.TagVowel, akshara.TagLongVowel}, s.Sorted())
}
