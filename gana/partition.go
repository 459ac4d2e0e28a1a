package gana

import (
	"fmt"

	"github.com/kavyateja/chandassu/prosody"
)

// Segment is one of the four gana positions of a dwipada partition.
type Segment struct {
	Position int      // 1-based position in the template
	Pattern  string   // slice of the weight-marker string
	Name     string   // gana name, "" when the pattern is unknown
	Family   Family   // expected family for this position
	Aksharas []string // the aksharas covered by this segment
	Valid    bool
	Reason   string // diagnosis when invalid, "" otherwise
}

// Partition is the outcome of matching one line against the dwipada
// template of three Indra ganas and one Surya gana.
type Partition struct {
	Segments   [4]Segment
	Lengths    [4]int
	Syllables  int // weight-bearing akshara count
	Matched    int // valid segments, 0 to 4
	FullyValid bool
	Tried      int // length combinations whose total fit the line
	ValidFound int // fully valid combinations among those tried
}

// PartitionDwipadaLine tries every dwipada length combination against
// the line's weight markers: the three Indra positions take 3 or 4
// syllables each and the Surya position 2 or 3. The weights and units
// slices are parallel; ignorable units (Empty weight) are skipped.
//
// The first fully valid combination in iteration order wins. When none
// is fully valid the combination with the most valid positions is
// returned with per-position diagnostics. A line with fewer than 4
// weight-bearing syllables, or whose length no combination can total,
// yields nil: absence, not an error.
func PartitionDwipadaLine(weights []prosody.Weight, units []string) *Partition {
	var pattern []rune
	var aksharas []string
	for i, w := range weights {
		if w == prosody.Empty {
			continue
		}
		pattern = append(pattern, rune(w))
		if i < len(units) {
			aksharas = append(aksharas, units[i])
		}
	}
	n := len(pattern)
	if n < 4 {
		return nil
	}

	var best *Partition
	tried := 0
	validFound := 0
	for _, i1 := range []int{3, 4} {
		for _, i2 := range []int{3, 4} {
			for _, i3 := range []int{3, 4} {
				for _, s := range []int{2, 3} {
					if i1+i2+i3+s != n {
						continue
					}
					tried++
					p := buildPartition(pattern, aksharas, [4]int{i1, i2, i3, s})
					if p.FullyValid {
						validFound++
						if best == nil || !best.FullyValid {
							best = p
						}
					} else if best == nil || (!best.FullyValid && p.Matched > best.Matched) {
						best = p
					}
				}
			}
		}
	}
	if best == nil {
		return nil
	}
	best.Tried = tried
	best.ValidFound = validFound
	return best
}

func buildPartition(pattern []rune, aksharas []string, lengths [4]int) *Partition {
	p := &Partition{Lengths: lengths, Syllables: len(pattern)}
	expected := [4]Family{FamilyIndra, FamilyIndra, FamilyIndra, FamilySurya}

	pos := 0
	for i, l := range lengths {
		slice := string(pattern[pos : pos+l])
		seg := Segment{
			Position: i + 1,
			Pattern:  slice,
			Family:   expected[i],
		}
		if pos+l <= len(aksharas) {
			seg.Aksharas = aksharas[pos : pos+l]
		}
		name, family, ok := Identify(slice)
		if ok && family == expected[i] {
			seg.Name = name
			seg.Valid = true
			p.Matched++
		} else {
			seg.Reason = fmt.Sprintf("pattern %q is not a valid %s gana", slice, expected[i])
		}
		p.Segments[i] = seg
		pos += l
	}
	p.FullyValid = p.Matched == 4
	return p
}

// Pattern reconstructs the full weight-marker string covered by the
// partition's four segments.
func (p *Partition) Pattern() string {
	if p == nil {
		return ""
	}
	return p.Segments[0].Pattern + p.Segments[1].Pattern +
		p.Segments[2].Pattern + p.Segments[3].Pattern
}
