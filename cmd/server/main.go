// Command server exposes the chandassu analysis engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/segment?text=<telugu text>
//	GET  /api/profile?text=<telugu text>[&max_decompositions=N][&skip_decompositions=true]
//	GET  /api/line?text=<one line of verse>
//	POST /api/couplet          body: {"poem":"line1\nline2"}
//	GET  /api/compare?word1=<w1>&word2=<w2>
//	GET  /api/yati?letter1=<l1>&letter2=<l2>
//	GET  /api/prasa?line1=<l1>&line2=<l2>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/kavyateja/chandassu/akshara"
	"github.com/kavyateja/chandassu/dwipada"
	"github.com/kavyateja/chandassu/gana"
	"github.com/kavyateja/chandassu/profile"
	"github.com/kavyateja/chandassu/prosody"
	"github.com/kavyateja/chandassu/similarity"
)

// ---- JSON response types ------------------------------------------------

type segmentResponse struct {
	Text     string   `json:"text"`
	Units    []string `json:"units"`
	Aksharas []string `json:"aksharas"`
	Pattern  string   `json:"pattern"`
}

type ganaJSON struct {
	Position int      `json:"position"`
	Pattern  string   `json:"pattern"`
	Name     string   `json:"name,omitempty"`
	Family   string   `json:"family"`
	Aksharas []string `json:"aksharas,omitempty"`
	Valid    bool     `json:"valid"`
	Reason   string   `json:"reason,omitempty"`
}

type partitionJSON struct {
	Ganas      []ganaJSON `json:"ganas"`
	Lengths    [4]int     `json:"lengths"`
	Matched    int        `json:"matched"`
	FullyValid bool       `json:"fully_valid"`
}

type lineJSON struct {
	Line            string         `json:"line"`
	Aksharas        []string       `json:"aksharas"`
	Pattern         string         `json:"pattern"`
	Partition       *partitionJSON `json:"partition"`
	FirstLetter     string         `json:"first_letter,omitempty"`
	SecondConsonant string         `json:"second_consonant,omitempty"`
	ThirdGanaLetter string         `json:"third_gana_letter,omitempty"`
}

type yatiJSON struct {
	Letter1      string   `json:"letter1"`
	Letter2      string   `json:"letter2"`
	Match        bool     `json:"match"`
	Quality      string   `json:"quality"`
	GroupMembers []string `json:"group_members,omitempty"`
}

type prasaJSON struct {
	Match        bool   `json:"match"`
	Insufficient bool   `json:"insufficient"`
	Akshara1     string `json:"akshara1,omitempty"`
	Akshara2     string `json:"akshara2,omitempty"`
	Consonant1   string `json:"consonant1,omitempty"`
	Consonant2   string `json:"consonant2,omitempty"`
	Explanation  string `json:"explanation,omitempty"`
}

type scoreJSON struct {
	Overall     float64 `json:"overall"`
	GanaLine1   float64 `json:"gana_line1"`
	GanaLine2   float64 `json:"gana_line2"`
	GanaAverage float64 `json:"gana_average"`
	Prasa       float64 `json:"prasa"`
	YatiLine1   float64 `json:"yati_line1"`
	YatiLine2   float64 `json:"yati_line2"`
	YatiAverage float64 `json:"yati_average"`
}

type coupletResponse struct {
	Line1 lineJSON  `json:"line1"`
	Line2 lineJSON  `json:"line2"`
	Prasa prasaJSON `json:"prasa"`
	Yati1 *yatiJSON `json:"yati_line1"`
	Yati2 *yatiJSON `json:"yati_line2"`
	Valid bool      `json:"valid"`
	Score scoreJSON `json:"score"`
}

type compareResponse struct {
	Word1            string   `json:"word1"`
	Word2            string   `json:"word2"`
	Pattern1         string   `json:"pattern1"`
	Pattern2         string   `json:"pattern2"`
	CommonTags       []string `json:"common_tags"`
	TagSimilarity    float64  `json:"tag_similarity"`
	TagDistance      float64  `json:"tag_distance"`
	BigramSimilarity float64  `json:"bigram_similarity"`
	BigramDistance   float64  `json:"bigram_distance"`
	CommonRun        string   `json:"common_run"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toPartitionJSON(p *gana.Partition) *partitionJSON {
	if p == nil {
		return nil
	}
	out := &partitionJSON{
		Lengths:    p.Lengths,
		Matched:    p.Matched,
		FullyValid: p.FullyValid,
	}
	for _, seg := range p.Segments {
		out.Ganas = append(out.Ganas, ganaJSON{
			Position: seg.Position,
			Pattern:  seg.Pattern,
			Name:     seg.Name,
			Family:   string(seg.Family),
			Aksharas: seg.Aksharas,
			Valid:    seg.Valid,
			Reason:   seg.Reason,
		})
	}
	return out
}

func toLineJSON(l dwipada.LineAnalysis) lineJSON {
	return lineJSON{
		Line:            l.Line,
		Aksharas:        l.Aksharas,
		Pattern:         l.Pattern,
		Partition:       toPartitionJSON(l.Partition),
		FirstLetter:     l.FirstLetter,
		SecondConsonant: l.SecondConsonant,
		ThirdGanaLetter: l.ThirdGanaLetter,
	}
}

func toYatiJSON(v *dwipada.YatiVerdict) *yatiJSON {
	if v == nil {
		return nil
	}
	return &yatiJSON{
		Letter1:      v.Letter1,
		Letter2:      v.Letter2,
		Match:        v.Match,
		Quality:      v.Quality.String(),
		GroupMembers: v.GroupMembers,
	}
}

func toPrasaJSON(v dwipada.PrasaVerdict) prasaJSON {
	return prasaJSON{
		Match:        v.Match,
		Insufficient: v.Insufficient,
		Akshara1:     v.Akshara1,
		Akshara2:     v.Akshara2,
		Consonant1:   v.Consonant1,
		Consonant2:   v.Consonant2,
		Explanation:  v.Explanation,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleSegment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}
	units := akshara.Segment(text)
	writeJSON(w, http.StatusOK, segmentResponse{
		Text:     text,
		Units:    units,
		Aksharas: akshara.Pure(units),
		Pattern:  prosody.Pattern(prosody.AssignWeights(units)),
	})
}

func handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}

	var opts []profile.Option
	if n, err := strconv.Atoi(r.URL.Query().Get("max_decompositions")); err == nil && n > 0 {
		opts = append(opts, profile.WithMaxDecompositions(n))
	}
	if skip, _ := strconv.ParseBool(r.URL.Query().Get("skip_decompositions")); skip {
		opts = append(opts, profile.WithoutDecompositions())
	}
	writeJSON(w, http.StatusOK, profile.Analyze(text, opts...))
}

func handleLine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}
	writeJSON(w, http.StatusOK, toLineJSON(dwipada.AnalyzeLine(text)))
}

func handleCouplet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		Poem string `json:"poem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Poem == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'poem' field")
		return
	}

	c, err := dwipada.AnalyzeCouplet(body.Poem)
	if errors.Is(err, dwipada.ErrLineCount) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, coupletResponse{
		Line1: toLineJSON(c.Line1),
		Line2: toLineJSON(c.Line2),
		Prasa: toPrasaJSON(c.Prasa),
		Yati1: toYatiJSON(c.Yati1),
		Yati2: toYatiJSON(c.Yati2),
		Valid: c.Valid,
		Score: scoreJSON(c.Score),
	})
}

func handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	w1 := r.URL.Query().Get("word1")
	w2 := r.URL.Query().Get("word2")
	if w1 == "" || w2 == "" {
		writeError(w, http.StatusBadRequest, "missing 'word1' or 'word2' query parameter")
		return
	}

	c := similarity.CompareWords(w1, w2)
	tags := make([]string, 0, len(c.CommonTags))
	for _, t := range c.CommonTags {
		tags = append(tags, string(t))
	}
	writeJSON(w, http.StatusOK, compareResponse{
		Word1:            c.Word1.Word,
		Word2:            c.Word2.Word,
		Pattern1:         c.Word1.Pattern,
		Pattern2:         c.Word2.Pattern,
		CommonTags:       tags,
		TagSimilarity:    c.TagSimilarity,
		TagDistance:      c.TagDistance,
		BigramSimilarity: c.BigramSimilarity,
		BigramDistance:   c.BigramDistance,
		CommonRun:        prosody.Pattern(c.CommonRun),
	})
}

func handleYati(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	l1 := r.URL.Query().Get("letter1")
	l2 := r.URL.Query().Get("letter2")
	if l1 == "" || l2 == "" {
		writeError(w, http.StatusBadRequest, "missing 'letter1' or 'letter2' query parameter")
		return
	}
	v := dwipada.MatchYati(l1, l2)
	writeJSON(w, http.StatusOK, toYatiJSON(&v))
}

func handlePrasa(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	l1 := r.URL.Query().Get("line1")
	l2 := r.URL.Query().Get("line2")
	if l1 == "" || l2 == "" {
		writeError(w, http.StatusBadRequest, "missing 'line1' or 'line2' query parameter")
		return
	}
	writeJSON(w, http.StatusOK, toPrasaJSON(dwipada.MatchPrasa(l1, l2)))
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/segment", handleSegment)
	mux.HandleFunc("/api/profile", handleProfile)
	mux.HandleFunc("/api/line", handleLine)
	mux.HandleFunc("/api/couplet", handleCouplet)
	mux.HandleFunc("/api/compare", handleCompare)
	mux.HandleFunc("/api/yati", handleYati)
	mux.HandleFunc("/api/prasa", handlePrasa)

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
