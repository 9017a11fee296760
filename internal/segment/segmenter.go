package segment

import (
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/catalog"
	"github.com/clauselens/clauselens/internal/classify"
	"github.com/clauselens/clauselens/internal/model"
)

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// Segmenter splits raw document text into ordered clause spans
type Segmenter struct {
	catalog    *catalog.Catalog
	classifier *classify.Classifier
}

// NewSegmenter creates a segmenter over the given rule catalog
func NewSegmenter(c *catalog.Catalog) *Segmenter {
	return &Segmenter{
		catalog:    c,
		classifier: classify.NewClassifier(c),
	}
}

// Segment splits text into clauses with type and confidence populated.
// It never fails: empty input yields no clauses, and any internal panic
// degrades to a single whole-document clause of type unknown.
func (s *Segmenter) Segment(text string) (clauses []model.Clause) {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			clauses = []model.Clause{{
				ID:         1,
				Text:       text,
				Type:       model.ClauseTypeUnknown,
				StartIndex: 0,
				EndIndex:   len(text),
				Confidence: 0.1,
			}}
		}
	}()

	sentences := splitSentences(text)

	var buffer string
	clauseID := 1
	startIndex := 0

	flush := func() {
		trimmed := strings.TrimSpace(buffer)
		if trimmed == "" {
			return
		}
		clauseType, confidence := s.classifier.Classify(buffer)
		clauses = append(clauses, model.Clause{
			ID:         clauseID,
			Text:       trimmed,
			Type:       clauseType,
			StartIndex: startIndex,
			EndIndex:   startIndex + len(buffer),
			Confidence: confidence,
		})
		clauseID++
	}

	for _, sentence := range sentences {
		if s.isClauseStart(sentence) && strings.TrimSpace(buffer) != "" {
			flush()

			buffer = sentence
			// First-occurrence search: a clause opener repeated verbatim
			// earlier in the document mislocates the span to the earlier
			// occurrence.
			if idx := strings.Index(text, sentence); idx >= 0 {
				startIndex = idx
			}
		} else if buffer == "" {
			buffer = sentence
		} else {
			buffer += " " + sentence
		}
	}

	flush()

	if len(clauses) == 0 {
		clauses = []model.Clause{{
			ID:         1,
			Text:       text,
			Type:       model.ClauseTypeGeneral,
			StartIndex: 0,
			EndIndex:   len(text),
			Confidence: 0.5,
		}}
	}

	return clauses
}

// isClauseStart reports whether a sentence opens a new clause
func (s *Segmenter) isClauseStart(sentence string) bool {
	for _, pattern := range s.catalog.BoundaryPatterns() {
		if pattern.MatchString(sentence) {
			return true
		}
	}
	return false
}

// splitSentences splits text into sentence-like units on runs of sentence
// terminators, dropping empty results
func splitSentences(text string) []string {
	parts := sentenceTerminators.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
