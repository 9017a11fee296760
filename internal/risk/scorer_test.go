package risk

import (
	"math"
	"strings"
	"testing"

	"github.com/clauselens/clauselens/internal/catalog"
	"github.com/clauselens/clauselens/internal/model"
)

func newTestScorer() *Scorer {
	return NewScorerWithFallback(catalog.New(), &FixedFallback{Score: 0.5})
}

func TestRiskLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  model.RiskLevel
	}{
		{1.0, model.RiskLevelHigh},
		{0.7, model.RiskLevelHigh},
		{0.69, model.RiskLevelMedium},
		{0.4, model.RiskLevelMedium},
		{0.39, model.RiskLevelLow},
		{0.0, model.RiskLevelLow},
	}
	for _, tc := range cases {
		if got := model.RiskLevelFor(tc.score); got != tc.want {
			t.Errorf("RiskLevelFor(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestScore_EmptyClause(t *testing.T) {
	s := newTestScorer()

	for _, text := range []string{"", "   \t\n"} {
		got := s.Score(text)
		if got.RiskScore != 0.0 {
			t.Errorf("Score(%q).RiskScore = %v, want 0.0", text, got.RiskScore)
		}
		if got.RiskLevel != model.RiskLevelLow {
			t.Errorf("Score(%q).RiskLevel = %s, want low", text, got.RiskLevel)
		}
		if got.Color != model.ColorLow {
			t.Errorf("Score(%q).Color = %s, want %s", text, got.Color, model.ColorLow)
		}
		if len(got.RiskFactors) != 0 {
			t.Errorf("Score(%q).RiskFactors = %v, want none", text, got.RiskFactors)
		}
	}
}

func TestScore_DensePatternClause(t *testing.T) {
	s := newTestScorer()

	// One word, one high-group match: pattern component 1/1 with no
	// adjustments, clamped score 1.0.
	got := s.Score("Irrevocable.")
	if !scoreEqual(got.RiskScore, 1.0) {
		t.Errorf("RiskScore = %v, want 1.0", got.RiskScore)
	}
	if got.RiskLevel != model.RiskLevelHigh {
		t.Errorf("RiskLevel = %s, want high", got.RiskLevel)
	}
	if len(got.RiskFactors) != 1 || got.RiskFactors[0] != "Irrevocable Terms" {
		t.Errorf("RiskFactors = %v, want [Irrevocable Terms]", got.RiskFactors)
	}
}

func TestScore_MediumPatternClause(t *testing.T) {
	s := newTestScorer()

	// Two high-group matches over four words: 2/4 = 0.5, no adjustments.
	got := s.Score("Waive any rights irrevocable")
	if !scoreEqual(got.RiskScore, 0.5) {
		t.Errorf("RiskScore = %v, want 0.5", got.RiskScore)
	}
	if got.RiskLevel != model.RiskLevelMedium {
		t.Errorf("RiskLevel = %s, want medium", got.RiskLevel)
	}
}

func TestScore_AdjustmentsWithoutPatternMatches(t *testing.T) {
	s := newTestScorer()

	// No weighted group matches. Negation hits not, no, without, unless
	// (capped at 0.2), uncertainty hits uncertain (0.03), urgency hits
	// immediately and without delay (capped at 0.1).
	got := s.Score("Do not act without delay immediately unless uncertain")
	if !scoreEqual(got.RiskScore, 0.33) {
		t.Errorf("RiskScore = %v, want 0.33", got.RiskScore)
	}
	if got.RiskLevel != model.RiskLevelLow {
		t.Errorf("RiskLevel = %s, want low", got.RiskLevel)
	}
}

func TestScore_PenaltyAndIndemnityFactors(t *testing.T) {
	s := newTestScorer()

	text := "The breaching party shall pay a penalty of $10,000 and indemnify the other party without limitation."
	got := s.Score(text)

	wantFactors := []string{"Penalty Clauses", "Indemnification"}
	for _, want := range wantFactors {
		if !containsString(got.RiskFactors, want) {
			t.Errorf("RiskFactors = %v, missing %q", got.RiskFactors, want)
		}
	}
	if got.RiskScore <= 0 {
		t.Errorf("RiskScore = %v, want > 0", got.RiskScore)
	}

	benign := s.Score("The parties will meet for coffee on Tuesdays")
	if got.RiskScore <= benign.RiskScore {
		t.Errorf("risky clause scored %v, benign clause %v", got.RiskScore, benign.RiskScore)
	}

	if !strings.Contains(got.Explanation, "Penalty Clauses") {
		t.Errorf("Explanation %q does not name the factors", got.Explanation)
	}
}

func TestScore_ClampedToOne(t *testing.T) {
	s := newTestScorer()

	// Dense matches plus length and keyword adjustments exceed 1.0 before
	// the final clamp.
	got := s.Score("Irrevocable! Permanent! Final! Not without limitation, never without restriction, no waiver, immediately.")
	if got.RiskScore > 1.0 {
		t.Errorf("RiskScore = %v, want <= 1.0", got.RiskScore)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := newTestScorer()
	text := "Breach shall result in immediate termination and a penalty of $500 without limitation."

	first := s.Score(text)
	second := s.Score(text)

	if first.RiskScore != second.RiskScore || first.RiskLevel != second.RiskLevel {
		t.Errorf("scores differ between runs: %+v vs %+v", first, second)
	}
	if len(first.RiskFactors) != len(second.RiskFactors) {
		t.Errorf("factor sets differ between runs: %v vs %v", first.RiskFactors, second.RiskFactors)
	}
}

func TestExplain(t *testing.T) {
	got := Explain(model.RiskLevelHigh, []string{"Penalty Clauses", "Indemnification"})
	want := "This clause contains high-risk elements that could significantly impact your rights or obligations." +
		" Identified risk factors: Penalty Clauses, Indemnification."
	if got != want {
		t.Errorf("Explain(high) = %q, want %q", got, want)
	}

	got = Explain(model.RiskLevelLow, nil)
	want = "This clause appears to have low-risk elements, but should still be reviewed."
	if got != want {
		t.Errorf("Explain(low, none) = %q, want %q", got, want)
	}
}

func TestFixedFallback(t *testing.T) {
	fb := &FixedFallback{Score: 0.85}
	got := fb.Assess()

	if got.RiskScore != 0.85 {
		t.Errorf("RiskScore = %v, want 0.85", got.RiskScore)
	}
	if got.RiskLevel != model.RiskLevelHigh {
		t.Errorf("RiskLevel = %s, want high", got.RiskLevel)
	}
	wantFactors := []string{"Unlimited Liability", "Automatic Termination"}
	if len(got.RiskFactors) != 2 || got.RiskFactors[0] != wantFactors[0] || got.RiskFactors[1] != wantFactors[1] {
		t.Errorf("RiskFactors = %v, want %v", got.RiskFactors, wantFactors)
	}
	if got.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
}

func TestRandomFallback_Range(t *testing.T) {
	fb := NewRandomFallback()

	for i := 0; i < 100; i++ {
		got := fb.Assess()
		if got.RiskScore < 0.1 || got.RiskScore > 0.9 {
			t.Fatalf("RiskScore = %v, want in [0.1, 0.9]", got.RiskScore)
		}
		if got.RiskLevel != model.RiskLevelFor(got.RiskScore) {
			t.Fatalf("RiskLevel %s inconsistent with score %v", got.RiskLevel, got.RiskScore)
		}
		if len(got.RiskFactors) == 0 {
			t.Fatal("expected canned risk factors")
		}
	}
}

func scoreEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
