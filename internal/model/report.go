package model

import "time"

// Report represents the complete analysis of one document
type Report struct {
	Document   string    `json:"document"`    // Document name (file base name or URL subject)
	Source     string    `json:"source"`      // Path or URL the text came from
	AnalyzedAt time.Time `json:"analyzed_at"` // When the analysis occurred
	TextLength int       `json:"text_length"` // Length of the extracted text in characters

	Language           string  `json:"language"`            // Detected language code (e.g. "en")
	LanguageConfidence float64 `json:"language_confidence"` // Detection confidence in [0,1]

	Clauses []Clause         `json:"clauses"` // Ordered clause spans
	Risks   []RiskAssessment `json:"risks"`   // One assessment per clause, in clause-id order

	Summaries map[string]string `json:"summaries,omitempty"` // Optional LLM summaries (never affect analysis)
}

// Pair binds a clause to its risk assessment for ordered iteration
type Pair struct {
	Clause Clause         `json:"clause"`
	Risk   RiskAssessment `json:"risk"`
}

// Pairs zips clauses and assessments in clause-id order. Both slices are
// produced in that order by the pipeline; the zip is positional.
func (r *Report) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r.Clauses))
	for i, c := range r.Clauses {
		if i >= len(r.Risks) {
			break
		}
		pairs = append(pairs, Pair{Clause: c, Risk: r.Risks[i]})
	}
	return pairs
}

// CountByLevel tallies assessments per risk level
func (r *Report) CountByLevel() map[RiskLevel]int {
	counts := make(map[RiskLevel]int)
	for _, a := range r.Risks {
		counts[a.RiskLevel]++
	}
	return counts
}
