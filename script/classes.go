package script

// Letter-class names (varnamala divisions). These feed the classifier's
// tag sets; transliterated from the traditional Telugu grammar terms.
const (
	ClassPluta          = "plutamulu"          // prolonged vowels ఐ ఔ
	ClassSarala         = "saralamulu"         // soft stops
	ClassParusha        = "parushamulu"        // hard stops
	ClassSthira         = "sthiramulu"         // the remaining consonants
	ClassKaVarga        = "ka-vargamu"         // velar stop row
	ClassChaVarga       = "cha-vargamu"        // palatal stop row
	ClassTaVarga        = "ta-vargamu"         // retroflex stop row
	ClassThaVarga       = "tha-vargamu"        // dental stop row
	ClassPaVarga        = "pa-vargamu"         // labial stop row
	ClassSparsha        = "sparshamulu"        // all stops
	ClassUshma          = "ushmamulu"          // sibilants and హ
	ClassAntastha       = "antasthamulu"       // semivowels
	ClassKanthya        = "kanthyamulu"        // guttural
	ClassTaalavya       = "taalavyamulu"       // palatal
	ClassMoordhanya     = "moordhanyamulu"     // retroflex
	ClassDantya         = "dantyamulu"         // dental
	ClassOshthya        = "oshthyamulu"        // labial
	ClassAnunaasika     = "anunaasikamulu"     // nasal
	ClassKanthataalavya = "kanthataalavyamulu" // gutturo-palatal
	ClassKanthoshthya   = "kanthoshthyamulu"   // gutturo-labial
	ClassDantoshthya    = "dantoshthyamulu"    // dento-labial
)

// letterClassDefs lists every class with its members, in the fixed order
// the classifier emits them. The same letter may belong to several classes.
var letterClassDefs = []struct {
	name    string
	members string
}{
	{ClassPluta, "ఐఔ"},
	{ClassSarala, "గజడదబ"},
	{ClassParusha, "కచటతప"},
	{ClassSthira, "ఖఘఙఛఝఞఠఢణథధనఫభమయరఱలళవశషసహ"},
	{ClassKaVarga, "కఖగఘఙ"},
	{ClassChaVarga, "చౘఛజౙఝఞ"},
	{ClassTaVarga, "టఠడఢణ"},
	{ClassThaVarga, "తథదధన"},
	{ClassPaVarga, "పఫబభమ"},
	{ClassSparsha, "కఖగఘఙచౘఛజౙఝఞటఠడఢణతథదధనపఫబభమ"},
	{ClassUshma, "శసషహ"},
	{ClassAntastha, "యరఱలళవ"},
	{ClassKanthya, "అఆకఖగఘఙహ"},
	{ClassTaalavya, "ఇఈచఛజఝయశ"},
	{ClassMoordhanya, "ఋౠటఠడఢణషఱర"},
	{ClassDantya, "ఌౡతథదధౘౙలస"},
	{ClassOshthya, "ఉఊపఫబభమ"},
	{ClassAnunaasika, "ఙఞణనమ"},
	{ClassKanthataalavya, "ఎఏఐ"},
	{ClassKanthoshthya, "ఒఓఔ"},
	{ClassDantoshthya, "వ"},
}

// letterClasses maps a rune to every class it belongs to, precomputed at
// startup so LetterClasses stays a single map lookup.
var letterClasses = func() map[rune][]string {
	m := make(map[rune][]string)
	for _, def := range letterClassDefs {
		for _, r := range def.members {
			m[r] = append(m[r], def.name)
		}
	}
	return m
}()

// LetterClasses returns every letter class r belongs to, in table order.
// Unknown runes yield nil. Callers must not mutate the returned slice.
func LetterClasses(r rune) []string { return letterClasses[r] }

// Consonant vargas by place of articulation. Unlike the letter classes
// above, each consonant belongs to exactly one varga; the names double as
// human-readable evidence in prasa/yati diagnostics.
const (
	VargaVelar       = "ka-vargamu (velar)"
	VargaPalatal     = "cha-vargamu (palatal)"
	VargaRetroflex   = "ta-vargamu (retroflex)"
	VargaDental      = "tha-vargamu (dental)"
	VargaLabial      = "pa-vargamu (labial)"
	VargaApproximant = "ya-vargamu (approximant)"
	VargaAspirate    = "ha-vargamu (aspirate)"
)

var consonantVargas = func() map[rune]string {
	defs := []struct {
		name    string
		members string
	}{
		{VargaVelar, "కఖగఘఙ"},
		{VargaPalatal, "చఛజఝఞశషస"},
		{VargaRetroflex, "టఠడఢణ"},
		{VargaDental, "తథదధన"},
		{VargaLabial, "పఫబభమ"},
		{VargaApproximant, "యరలవళఱ"},
		{VargaAspirate, "హ"},
	}
	m := make(map[rune]string)
	for _, def := range defs {
		for _, r := range def.members {
			m[r] = def.name
		}
	}
	return m
}()

// ConsonantVarga returns the place-of-articulation varga of consonant c
// (the first rune of c), or ("", false) when c is empty or not a consonant.
func ConsonantVarga(c string) (string, bool) {
	for _, r := range c {
		v, ok := consonantVargas[r]
		return v, ok
	}
	return "", false
}
