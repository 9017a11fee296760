package risk

import (
	"math"
	"math/rand"

	"github.com/clauselens/clauselens/internal/model"
)

// Fallback produces a best-effort assessment when scoring fails internally.
// The default implementation is nondeterministic; tests substitute a
// deterministic one.
type Fallback interface {
	Assess() model.RiskAssessment
}

// RandomFallback draws a score uniformly from [0.1, 0.9] and attaches a
// canned factor set for the resulting bucket
type RandomFallback struct {
	rng *rand.Rand
}

// NewRandomFallback creates a fallback seeded from the global source
func NewRandomFallback() *RandomFallback {
	return &RandomFallback{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// Assess produces a pseudo-random assessment
func (f *RandomFallback) Assess() model.RiskAssessment {
	score := 0.1 + f.rng.Float64()*0.8
	score = math.Round(score*100) / 100
	return assessmentForScore(score)
}

// FixedFallback always returns the assessment for one score. Used in tests
// to make the degraded path assertable.
type FixedFallback struct {
	Score float64
}

// Assess produces the assessment for the fixed score
func (f *FixedFallback) Assess() model.RiskAssessment {
	return assessmentForScore(f.Score)
}

func assessmentForScore(score float64) model.RiskAssessment {
	level := model.RiskLevelFor(score)

	var factors []string
	switch level {
	case model.RiskLevelHigh:
		factors = []string{"Unlimited Liability", "Automatic Termination"}
	case model.RiskLevelMedium:
		factors = []string{"Payment Default", "Confidentiality Breach"}
	default:
		factors = []string{"Standard Terms"}
	}

	return model.RiskAssessment{
		RiskScore:   score,
		RiskLevel:   level,
		Color:       model.ColorFor(level),
		RiskFactors: factors,
		Explanation: Explain(level, factors),
	}
}
