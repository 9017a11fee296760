package risk

import (
	"strings"

	"github.com/clauselens/clauselens/internal/catalog"
	"github.com/clauselens/clauselens/internal/model"
)

// Scorer computes per-clause risk assessments from the rule catalog
type Scorer struct {
	catalog  *catalog.Catalog
	fallback Fallback
}

// NewScorer creates a scorer with the default pseudo-random fallback
func NewScorer(c *catalog.Catalog) *Scorer {
	return NewScorerWithFallback(c, NewRandomFallback())
}

// NewScorerWithFallback creates a scorer with an explicit fallback strategy
func NewScorerWithFallback(c *catalog.Catalog, fb Fallback) *Scorer {
	return &Scorer{catalog: c, fallback: fb}
}

// Score assesses one clause. ClauseID is left zero for the caller to bind.
// It never fails: an internal panic degrades to the fallback assessment.
func (s *Scorer) Score(text string) (assessment model.RiskAssessment) {
	defer func() {
		if r := recover(); r != nil {
			assessment = s.fallback.Assess()
		}
	}()

	score := s.analyze(text)
	level := model.RiskLevelFor(score)
	factors := s.identifyFactors(text)

	return model.RiskAssessment{
		RiskScore:   score,
		RiskLevel:   level,
		Color:       model.ColorFor(level),
		RiskFactors: factors,
		Explanation: Explain(level, factors),
	}
}

// analyze computes the continuous risk score in [0,1]
func (s *Scorer) analyze(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	totalScore := 0.0
	totalWeight := 0.0
	wordCount := len(strings.Fields(text))
	if wordCount < 1 {
		wordCount = 1
	}

	for _, group := range s.catalog.RiskGroups() {
		matches := 0
		for _, pattern := range group.Patterns {
			matches += len(pattern.FindAllStringIndex(text, -1))
		}
		if matches > 0 {
			// Normalize by word count to avoid bias toward longer clauses
			normalized := float64(matches) / float64(wordCount)
			totalScore += normalized * group.Weight
			totalWeight += group.Weight
		}
	}

	patternComponent := 0.0
	if totalWeight > 0 {
		patternComponent = totalScore / totalWeight
	}

	// Adjustments apply whether or not any weighted group matched; the sum
	// is clamped once at the end, not per term.
	final := patternComponent + s.additionalRisk(text)
	return min(1.0, final)
}

// additionalRisk accumulates the length, negation, uncertainty and urgency
// adjustments. Each keyword list counts a keyword at most once per clause,
// by substring containment, with a per-list cap.
func (s *Scorer) additionalRisk(text string) float64 {
	additional := 0.0
	lower := strings.ToLower(text)

	if len(text) > 200 {
		additional += 0.1
	} else if len(text) > 100 {
		additional += 0.05
	}

	additional += min(0.2, float64(countPresent(lower, s.catalog.NegationWords()))*0.05)
	additional += min(0.15, float64(countPresent(lower, s.catalog.UncertaintyWords()))*0.03)
	additional += min(0.1, float64(countPresent(lower, s.catalog.UrgencyWords()))*0.05)

	return additional
}

// identifyFactors evaluates every factor detector independently
func (s *Scorer) identifyFactors(text string) []string {
	var factors []string
	for _, detector := range s.catalog.FactorDetectors() {
		if detector.Pattern.MatchString(text) {
			factors = append(factors, detector.Name)
		}
	}
	return factors
}

// Explain renders the fixed explanation template for a level and factor set
func Explain(level model.RiskLevel, factors []string) string {
	var base string
	switch level {
	case model.RiskLevelHigh:
		base = "This clause contains high-risk elements that could significantly impact your rights or obligations."
	case model.RiskLevelMedium:
		base = "This clause contains moderate-risk elements that should be carefully reviewed."
	default:
		base = "This clause appears to have low-risk elements, but should still be reviewed."
	}

	if len(factors) > 0 {
		return base + " Identified risk factors: " + strings.Join(factors, ", ") + "."
	}
	return base
}

func countPresent(lower string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}
