package lang

import "strings"

// Result is a language detection outcome
type Result struct {
	Language   string  `json:"language"`   // ISO 639-1 code
	Confidence float64 `json:"confidence"` // In [0,1]
}

// Stopword indicator lists per language. Presence is counted per word, by
// substring containment, mirroring the classifier's keyword scans.
var indicators = []struct {
	code  string
	words []string
}{
	{"en", []string{"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by"}},
	{"es", []string{"el", "la", "de", "que", "y", "a", "en", "un", "es", "se", "no", "te", "lo", "le"}},
	{"fr", []string{"le", "la", "de", "et", "à", "un", "il", "que", "ne", "se", "ce", "pas", "son", "avec"}},
	{"de", []string{"der", "die", "und", "in", "den", "von", "zu", "das", "mit", "sich", "des", "auf", "für", "ist"}},
}

// Detect guesses the document language from stopword counts. The winning
// language must strictly beat every other count; ties and empty input fall
// back to English at low confidence.
func Detect(text string) Result {
	lower := strings.ToLower(text)

	counts := make([]int, len(indicators))
	for i, ind := range indicators {
		for _, word := range ind.words {
			if strings.Contains(lower, word) {
				counts[i]++
			}
		}
	}

	best := -1
	for i, count := range counts {
		strict := count > 0
		for j, other := range counts {
			if j != i && other >= count {
				strict = false
				break
			}
		}
		if strict {
			best = i
			break
		}
	}

	if best < 0 {
		return Result{Language: "en", Confidence: 0.3}
	}

	confidence := float64(counts[best]) / 10
	if confidence > 0.7 {
		confidence = 0.7
	}

	return Result{Language: indicators[best].code, Confidence: confidence}
}
