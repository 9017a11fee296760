package classify

import (
	"strings"

	"github.com/clauselens/clauselens/internal/catalog"
	"github.com/clauselens/clauselens/internal/model"
)

// Classifier assigns a semantic type and a confidence score to clause text
type Classifier struct {
	catalog *catalog.Catalog
}

// NewClassifier creates a classifier over the given rule catalog
func NewClassifier(c *catalog.Catalog) *Classifier {
	return &Classifier{catalog: c}
}

// Classify returns the clause type and a confidence in [0,1]
func (c *Classifier) Classify(text string) (model.ClauseType, float64) {
	return c.ClauseType(text), c.Confidence(text)
}

// ClauseType evaluates the type groups in priority order and returns the
// first group with at least one matching pattern, or general if none match
func (c *Classifier) ClauseType(text string) model.ClauseType {
	for _, group := range c.catalog.TypeGroups() {
		for _, pattern := range group.Patterns {
			if pattern.MatchString(text) {
				return group.Type
			}
		}
	}
	return model.ClauseTypeGeneral
}

// Confidence estimates how certain the span and type are. Base 0.5, raised by
// legal keyword presence (+0.05 each, capped at +0.3), clause length and
// terminal punctuation, clamped to [0,1].
func (c *Classifier) Confidence(text string) float64 {
	confidence := 0.5
	lower := strings.ToLower(text)

	keywordCount := 0
	for _, keyword := range c.catalog.LegalKeywords() {
		if strings.Contains(lower, keyword) {
			keywordCount++
		}
	}
	confidence += min(0.3, float64(keywordCount)*0.05)

	if len(text) > 100 {
		confidence += 0.1
	} else if len(text) > 50 {
		confidence += 0.05
	}

	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		confidence += 0.1
	}

	return min(1.0, confidence)
}
