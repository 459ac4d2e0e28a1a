package gana

// Family labels a group of gana patterns sharing a syllable count or a
// metrical role.
type Family string

const (
	FamilyEkaakshara  Family = "Ekaakshara"
	FamilyRendakshara Family = "Rendakshara"
	FamilyMoodakshara Family = "Moodakshara"
	FamilySurya       Family = "Surya"
	FamilyIndra       Family = "Indra"
	FamilyChandra     Family = "Chandra"
)

// Entry is one named pattern in the flat lookup table.
type Entry struct {
	Name   string
	Family Family
}

type familyDef struct {
	family   Family
	patterns map[string]string
}

// familyDefs lists every family in a fixed order. The flat table is
// built front to back, so when two families define the same pattern the
// later family's name wins the flat lookup; the dwipada matcher uses
// the indraGanas and suryaGanas tables directly and is unaffected.
var familyDefs = []familyDef{
	{FamilyEkaakshara, map[string]string{
		"U": "Guru", "I": "Laghu",
	}},
	{FamilyRendakshara, map[string]string{
		"II": "Lalamu", "IU": "Lagamu (Va)", "UI": "Galamu (Ha)", "UU": "Gagamu",
	}},
	{FamilyMoodakshara, map[string]string{
		"IUU": "Ya", "UUU": "Ma", "UUI": "Ta", "UIU": "Ra",
		"IUI": "Ja", "UII": "Bha", "III": "Na", "IIU": "Sa",
	}},
	{FamilySurya, map[string]string{
		"III": "Na", "UI": "Ha",
	}},
	{FamilyIndra, map[string]string{
		"IIIU": "Naga", "IIUI": "Sala", "IIII": "Nala",
		"UII": "Bha", "UIU": "Ra", "UUI": "Ta",
	}},
	{FamilyChandra, map[string]string{
		"UIII": "Bhala", "UIIU": "Bhagaru", "UUII": "Tala", "UUIU": "Taga",
		"UUUI": "Malagha", "IIIII": "Nalala", "IIIUU": "Nagaga", "IIIIU": "Nava",
		"IIUUI": "Saha", "IIUIU": "Sava", "IIUUU": "Sagaga", "IIIUI": "Naha",
		"UIUU": "Raguru", "IIII": "Nala",
	}},
}

// flatTable maps every known pattern to its (last-defined) entry.
var flatTable = func() map[string]Entry {
	t := make(map[string]Entry)
	for _, fd := range familyDefs {
		for p, name := range fd.patterns {
			t[p] = Entry{Name: name, Family: fd.family}
		}
	}
	return t
}()

// MaxPatternLen is the longest pattern any family defines.
const MaxPatternLen = 5

// indraGanas and suryaGanas drive the dwipada template. Names carry the
// Telugu spelling alongside the transliteration, matching how results
// are conventionally reported.
var indraGanas = map[string]string{
	"IIII": "Nala (నల)",
	"IIIU": "Naga (నగ)",
	"IIUI": "Sala (సల)",
	"UII":  "Bha (భ)",
	"UIU":  "Ra (ర)",
	"UUI":  "Ta (త)",
}

var suryaGanas = map[string]string{
	"III": "Na (న)",
	"UI":  "Ha/Gala (హ/గల)",
}

// Lookup resolves a pattern in the flat table.
func Lookup(pattern string) (Entry, bool) {
	e, ok := flatTable[pattern]
	return e, ok
}

// Identify resolves a pattern for the dwipada template: Indra ganas
// first, then Surya. Unknown patterns yield ("", "", false).
func Identify(pattern string) (name string, family Family, ok bool) {
	if n, ok := indraGanas[pattern]; ok {
		return n, FamilyIndra, true
	}
	if n, ok := suryaGanas[pattern]; ok {
		return n, FamilySurya, true
	}
	return "", "", false
}

// Families returns the family labels in definition order.
func Families() []Family {
	out := make([]Family, len(familyDefs))
	for i, fd := range familyDefs {
		out[i] = fd.family
	}
	return out
}

// FamilyPatterns returns a copy of one family's pattern-to-name table,
// or nil for an unknown family.
func FamilyPatterns(f Family) map[string]string {
	for _, fd := range familyDefs {
		if fd.family == f {
			out := make(map[string]string, len(fd.patterns))
			for p, n := range fd.patterns {
				out[p] = n
			}
			return out
		}
	}
	return nil
}
