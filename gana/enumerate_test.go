package gana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/gana"
	"github.com/kavyateja/chandassu/prosody"
)

// bruteForceCount checks every cut-point combination of a marker string
// against the pattern table, independently of the recursive enumerator.
func bruteForceCount(pattern string) int {
	n := len(pattern)
	if n == 0 {
		return 1
	}
	count := 0
	for mask := 0; mask < 1<<(n-1); mask++ {
		start, ok := 0, true
		for i := 0; i < n && ok; i++ {
			if i == n-1 || mask&(1<<i) != 0 {
				if _, found := gana.Lookup(pattern[start : i+1]); !found {
					ok = false
				}
				start = i + 1
			}
		}
		if ok {
			count++
		}
	}
	return count
}

// TestEnumerate_Completeness: for every short sequence, the enumerator
// finds exactly the decompositions the brute force finds.
func TestEnumerate_Completeness(t *testing.T) {
	for _, pattern := range []string{"", "U", "UI", "III", "UIUI", "IIIII", "UIUIUI", "IIIIII"} {
		got := gana.EnumerateDecompositions(wts(pattern))
		assert.Len(t, got, bruteForceCount(pattern), "decompositions of %q", pattern)
		for _, d := range got {
			assert.Equal(t, pattern, d.Pattern(), "each decomposition tiles %q exactly", pattern)
		}
	}
}

// TestEnumerate_SmallCases pins down contents, not just counts.
func TestEnumerate_SmallCases(t *testing.T) {
	got := gana.EnumerateDecompositions(wts("UI"))
	require.Len(t, got, 2)

	// shorter first prefix comes first
	assert.Equal(t, gana.Decomposition{
		{Pattern: "U", Name: "Guru", Family: gana.FamilyEkaakshara},
		{Pattern: "I", Name: "Laghu", Family: gana.FamilyEkaakshara},
	}, got[0])
	assert.Equal(t, gana.Decomposition{
		{Pattern: "UI", Name: "Ha", Family: gana.FamilySurya},
	}, got[1])

	got = gana.EnumerateDecompositions(nil)
	require.Len(t, got, 1, "the empty sequence has the empty decomposition")
	assert.Empty(t, got[0])
}

// TestEnumerate_IgnoresEmptyMarkers: Empty weights vanish before the
// decomposition, so a spaced line and its compact pattern agree.
func TestEnumerate_IgnoresEmptyMarkers(t *testing.T) {
	spaced := []prosody.Weight{prosody.Guru, prosody.Empty, prosody.Laghu}
	assert.Equal(t,
		gana.EnumerateDecompositions(wts("UI")),
		gana.EnumerateDecompositions(spaced))
}

// TestMapAksharas ties a decomposition back to the line's aksharas.
func TestMapAksharas(t *testing.T) {
	units := akshara.Segment("రామ కృష్ణ")
	weights := prosody.AssignWeights(units)

	decs := gana.EnumerateDecompositions(weights)
	require.NotEmpty(t, decs)

	covered := gana.MapAksharas(decs[0], weights, units)
	require.Len(t, covered, len(decs[0]))

	var flat []string
	for _, seg := range covered {
		flat = append(flat, seg...)
	}
	assert.Equal(t, []string{"రా", "మ", "కృ", "ష్ణ"}, flat,
		"segments cover the weight-bearing aksharas in order")
}

// TestEnumerate_Deterministic: two calls agree entry for entry, since
// the memo cache never leaks across calls.
func TestEnumerate_Deterministic(t *testing.T) {
	in := wts("UIUIUIUI")
	assert.Equal(t, gana.EnumerateDecompositions(in), gana.EnumerateDecompositions(in))
}
