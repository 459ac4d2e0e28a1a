// Package dwipada validates couplets against the dwipada meter. 📜
//
// A dwipada is a two-line verse form. Each line must split into three
// Indra ganas and one Surya gana; the two lines must rhyme on the base
// consonant of their second akshara (prasa); and within each line the
// first letter must alliterate with the letter opening the third gana
// (yati), either exactly or through a phonological kinship group.
//
// The package offers the individual checks (MatchYati, MatchPrasa),
// per-line analysis (AnalyzeLine), and the full couplet pipeline
// (AnalyzeCouplet) which combines gana, prasa and yati into a weighted
// percentage scorecard. Short or malformed input degrades to typed
// "not applicable" verdicts; the only error anywhere is the two-line
// precondition of AnalyzeCouplet.
package dwipada
