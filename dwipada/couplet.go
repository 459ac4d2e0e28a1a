package dwipada

import (
	"errors"
	"strings"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/gana"
	"github.com/kavyateja/chandassu/prosody"
)

// ErrLineCount is returned when couplet analysis receives fewer than
// two non-empty lines.
var ErrLineCount = errors.New("dwipada: couplet needs two non-empty lines")

// LineAnalysis is the full prosodic breakdown of one line.
type LineAnalysis struct {
	Line     string
	Aksharas []string         // weight-bearing aksharas in order
	Weights  []prosody.Weight // parallel to Aksharas
	Pattern  string           // guru-laghu marker string

	Partition *gana.Partition // nil when no length combination fits

	FirstLetter     string // opens the line, left side of the yati rule
	SecondConsonant string // base consonant of the second akshara
	ThirdGanaLetter string // opens the third gana, right side of yati
}

// ValidGanaSequence reports whether the line admits any dwipada
// partition at all, valid or best-effort.
func (l LineAnalysis) ValidGanaSequence() bool { return l.Partition != nil }

// AnalyzeLine segments, weighs and partitions one line of verse.
func AnalyzeLine(line string) LineAnalysis {
	line = strings.TrimSpace(line)
	units := akshara.Segment(line)
	weights := prosody.AssignWeights(units)

	a := LineAnalysis{
		Line:      line,
		Aksharas:  akshara.Pure(units),
		Weights:   prosody.Pure(weights),
		Pattern:   prosody.Pattern(weights),
		Partition: gana.PartitionDwipadaLine(weights, units),
	}
	if len(a.Aksharas) > 0 {
		a.FirstLetter = akshara.FirstLetter(a.Aksharas[0])
	}
	if len(a.Aksharas) > 1 {
		a.SecondConsonant, _ = akshara.BaseConsonant(a.Aksharas[1])
	}
	if a.Partition != nil {
		if third := a.Partition.Segments[2].Aksharas; len(third) > 0 {
			a.ThirdGanaLetter = akshara.FirstLetter(third[0])
		}
	}
	return a
}

// CoupletAnalysis is the combined verdict on a two-line dwipada.
type CoupletAnalysis struct {
	Line1, Line2 LineAnalysis

	Prasa PrasaVerdict
	// Yati1 and Yati2 are nil when a line has no third-gana letter to
	// check against.
	Yati1, Yati2 *YatiVerdict

	// Valid is the strict pass: both lines partition, prasa matches,
	// and every checkable yati matches.
	Valid bool

	Score Scorecard
}

// AnalyzeCouplet runs the full dwipada pipeline over a poem. The text
// must contain at least two non-empty lines; the first two are
// analyzed and any further lines are ignored.
func AnalyzeCouplet(poem string) (*CoupletAnalysis, error) {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(poem), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil, ErrLineCount
	}

	c := &CoupletAnalysis{
		Line1: AnalyzeLine(lines[0]),
		Line2: AnalyzeLine(lines[1]),
	}
	c.Prasa = MatchPrasa(c.Line1.Line, c.Line2.Line)
	c.Yati1 = lineYati(c.Line1)
	c.Yati2 = lineYati(c.Line2)

	c.Valid = c.Line1.ValidGanaSequence() && c.Line2.ValidGanaSequence() &&
		c.Prasa.Match &&
		(c.Yati1 == nil || c.Yati1.Match) &&
		(c.Yati2 == nil || c.Yati2.Match)

	c.Score = CombineScores(
		GanaScore(c.Line1.Partition), GanaScore(c.Line2.Partition),
		PrasaScore(c.Prasa),
		YatiScore(c.Yati1), YatiScore(c.Yati2),
	)
	return c, nil
}

func lineYati(l LineAnalysis) *YatiVerdict {
	if l.FirstLetter == "" || l.ThirdGanaLetter == "" {
		return nil
	}
	v := MatchYati(l.FirstLetter, l.ThirdGanaLetter)
	return &v
}
