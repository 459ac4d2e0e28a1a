package gana_test

import (
	"testing"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/gana"
	"github.com/kavyateja/chandassu/prosody"
)

func BenchmarkPartitionDwipadaLine(b *testing.B) {
	units := akshara.Segment("సౌధాగ్రముల యందు సదనంబు లందు")
	weights := prosody.AssignWeights(units)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gana.PartitionDwipadaLine(weights, units)
	}
}

func BenchmarkEnumerateDecompositions(b *testing.B) {
	weights := wts("UIUIUIUIUIUIUIUI")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gana.EnumerateDecompositions(weights)
	}
}
