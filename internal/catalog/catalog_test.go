package catalog

import (
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

func TestNew_TableShapes(t *testing.T) {
	c := New()

	if len(c.BoundaryPatterns()) != 21 {
		t.Errorf("expected 21 boundary patterns, got %d", len(c.BoundaryPatterns()))
	}

	if len(c.TypeGroups()) != 8 {
		t.Errorf("expected 8 type groups, got %d", len(c.TypeGroups()))
	}

	if len(c.RiskGroups()) != 3 {
		t.Errorf("expected 3 risk groups, got %d", len(c.RiskGroups()))
	}
	for _, g := range c.RiskGroups() {
		if len(g.Patterns) != 10 {
			t.Errorf("risk group %q: expected 10 patterns, got %d", g.Name, len(g.Patterns))
		}
	}

	if len(c.FactorDetectors()) != 10 {
		t.Errorf("expected 10 factor detectors, got %d", len(c.FactorDetectors()))
	}
}

func TestNew_TypeGroupPriorityOrder(t *testing.T) {
	c := New()

	want := []model.ClauseType{
		model.ClauseTypeDefinition,
		model.ClauseTypeObligation,
		model.ClauseTypeProhibition,
		model.ClauseTypeCondition,
		model.ClauseTypeTermination,
		model.ClauseTypeLiability,
		model.ClauseTypePayment,
		model.ClauseTypeConfidentiality,
	}

	for i, group := range c.TypeGroups() {
		if group.Type != want[i] {
			t.Errorf("type group %d: expected %s, got %s", i, want[i], group.Type)
		}
	}
}

func TestNew_RiskGroupWeights(t *testing.T) {
	c := New()

	want := map[string]float64{"high": 0.8, "medium": 0.5, "low": 0.2}
	for _, g := range c.RiskGroups() {
		if g.Weight != want[g.Name] {
			t.Errorf("risk group %q: expected weight %v, got %v", g.Name, want[g.Name], g.Weight)
		}
	}
}

func TestNew_FactorDetectorNames(t *testing.T) {
	c := New()

	want := []string{
		"Unlimited Liability", "Automatic Termination", "Penalty Clauses",
		"Indemnification", "Waiver of Rights", "Consequential Damages",
		"Irrevocable Terms", "Exclusive Remedy", "Confidentiality Breach",
		"Payment Default",
	}

	detectors := c.FactorDetectors()
	for i, name := range want {
		if detectors[i].Name != name {
			t.Errorf("detector %d: expected %q, got %q", i, name, detectors[i].Name)
		}
	}
}

func TestBoundaryPatterns_CaseInsensitiveAnchored(t *testing.T) {
	c := New()

	matches := func(sentence string) bool {
		for _, p := range c.BoundaryPatterns() {
			if p.MatchString(sentence) {
				return true
			}
		}
		return false
	}

	for _, sentence := range []string{
		"Section 1: Definitions",
		"WHEREAS the parties wish to cooperate",
		"whereas the parties wish to cooperate",
		"1. The first obligation",
		"(a) a lettered item",
		"PROVIDED THAT notice is given",
		"If the buyer defaults",
		"Unless otherwise agreed",
	} {
		if !matches(sentence) {
			t.Errorf("expected boundary match for %q", sentence)
		}
	}

	for _, sentence := range []string{
		"The parties agree as follows",
		"Payment is due on the first of the month",
		"This sentence mentions whereas in the middle",
	} {
		if matches(sentence) {
			t.Errorf("unexpected boundary match for %q", sentence)
		}
	}
}

func TestWordLists(t *testing.T) {
	c := New()

	if len(c.LegalKeywords()) != 18 {
		t.Errorf("expected 18 legal keywords, got %d", len(c.LegalKeywords()))
	}
	if len(c.NegationWords()) != 8 {
		t.Errorf("expected 8 negation words, got %d", len(c.NegationWords()))
	}
	if len(c.UncertaintyWords()) != 6 {
		t.Errorf("expected 6 uncertainty words, got %d", len(c.UncertaintyWords()))
	}
	if len(c.UrgencyWords()) != 5 {
		t.Errorf("expected 5 urgency words, got %d", len(c.UrgencyWords()))
	}
}
