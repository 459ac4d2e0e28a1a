package gana_test

import (
	"fmt"
	"strings"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/gana"
	"github.com/kavyateja/chandassu/prosody"
)

func ExamplePartitionDwipadaLine() {
	units := akshara.Segment("సౌధాగ్రముల యందు సదనంబు లందు")
	weights := prosody.AssignWeights(units)

	p := gana.PartitionDwipadaLine(weights, units)
	for _, seg := range p.Segments {
		fmt.Println(seg.Pattern, "=", seg.Name)
	}
	// Output:
	// UUI = Ta (త)
	// IIUI = Sala (సల)
	// IIUI = Sala (సల)
	// UI = Ha/Gala (హ/గల)
}

func ExampleEnumerateDecompositions() {
	for _, d := range gana.EnumerateDecompositions(wts("UI")) {
		names := make([]string, len(d))
		for i, u := range d {
			names[i] = u.Name
		}
		fmt.Println(strings.Join(names, " "))
	}
	// Output:
	// Guru Laghu
	// Ha
}
