package model

import (
	"encoding/json"
	"testing"
)

func testReport() *Report {
	return &Report{
		Document: "lease",
		Clauses: []Clause{
			{ID: 1, Text: "first", Type: ClauseTypeGeneral},
			{ID: 2, Text: "second", Type: ClauseTypeObligation},
			{ID: 3, Text: "third", Type: ClauseTypeLiability},
		},
		Risks: []RiskAssessment{
			{ClauseID: 1, RiskScore: 0.1, RiskLevel: RiskLevelLow},
			{ClauseID: 2, RiskScore: 0.5, RiskLevel: RiskLevelMedium},
			{ClauseID: 3, RiskScore: 0.9, RiskLevel: RiskLevelHigh},
		},
	}
}

func TestReport_Pairs(t *testing.T) {
	report := testReport()

	pairs := report.Pairs()
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	for i, pair := range pairs {
		if pair.Clause.ID != pair.Risk.ClauseID {
			t.Errorf("pair %d: clause %d zipped with assessment %d", i, pair.Clause.ID, pair.Risk.ClauseID)
		}
	}
}

func TestReport_PairsUnevenLengths(t *testing.T) {
	report := testReport()
	report.Risks = report.Risks[:2]

	if pairs := report.Pairs(); len(pairs) != 2 {
		t.Errorf("expected 2 pairs with truncated risks, got %d", len(pairs))
	}
}

func TestReport_CountByLevel(t *testing.T) {
	counts := testReport().CountByLevel()

	if counts[RiskLevelHigh] != 1 || counts[RiskLevelMedium] != 1 || counts[RiskLevelLow] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestReport_JSONShape(t *testing.T) {
	data, err := json.Marshal(testReport())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"document", "source", "analyzed_at", "text_length", "language", "clauses", "risks"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in report JSON", key)
		}
	}
	if _, ok := decoded["summaries"]; ok {
		t.Error("empty summaries should be omitted")
	}
}

func TestColorFor(t *testing.T) {
	cases := []struct {
		level RiskLevel
		want  string
	}{
		{RiskLevelHigh, ColorHigh},
		{RiskLevelMedium, ColorMedium},
		{RiskLevelLow, ColorLow},
	}
	for _, tc := range cases {
		if got := ColorFor(tc.level); got != tc.want {
			t.Errorf("ColorFor(%s) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestClauseJSONFields(t *testing.T) {
	clause := Clause{ID: 7, Text: "t", Type: ClauseTypePayment, StartIndex: 3, EndIndex: 8, Confidence: 0.75}

	data, err := json.Marshal(clause)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "text", "type", "start_index", "end_index", "confidence"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in clause JSON", key)
		}
	}
}
