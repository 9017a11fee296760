package model

// RiskAssessment is the per-clause risk result. Exactly one assessment exists
// per clause, keyed by clause id.
type RiskAssessment struct {
	ClauseID    int       `json:"clause_id"`
	RiskScore   float64   `json:"risk_score"`   // Continuous score in [0,1]
	RiskLevel   RiskLevel `json:"risk_level"`   // Bucket derived from RiskScore
	Color       string    `json:"color"`        // Presentation hint bound to RiskLevel
	RiskFactors []string  `json:"risk_factors"` // Named factors from the fixed detector set
	Explanation string    `json:"explanation"`  // Deterministic function of level + factors
}

// RiskLevel is the coarse risk bucket
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// Color hints bound one-to-one to risk levels
const (
	ColorHigh   = "#ff4444"
	ColorMedium = "#ffaa00"
	ColorLow    = "#44aa44"
)

// RiskLevelFor buckets a score: >= 0.7 high, >= 0.4 medium, else low.
// Boundary values belong to the upper bucket.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score >= 0.7:
		return RiskLevelHigh
	case score >= 0.4:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// ColorFor returns the presentation color for a risk level
func ColorFor(level RiskLevel) string {
	switch level {
	case RiskLevelHigh:
		return ColorHigh
	case RiskLevelMedium:
		return ColorMedium
	default:
		return ColorLow
	}
}
