package store

import (
	"testing"
	"time"

	"github.com/clauselens/clauselens/internal/model"
)

func sampleReport(document string) *model.Report {
	return &model.Report{
		Document:   document,
		Source:     document + ".txt",
		AnalyzedAt: time.Now().UTC(),
		TextLength: 42,
		Language:   "en",
		Clauses: []model.Clause{
			{ID: 1, Text: "clause one", Type: model.ClauseTypeGeneral, Confidence: 0.5},
			{ID: 2, Text: "clause two", Type: model.ClauseTypeObligation, Confidence: 0.8},
		},
		Risks: []model.RiskAssessment{
			{ClauseID: 1, RiskScore: 0.2, RiskLevel: model.RiskLevelLow, Color: model.ColorLow},
			{ClauseID: 2, RiskScore: 0.9, RiskLevel: model.RiskLevelHigh, Color: model.ColorHigh},
		},
	}
}

func TestHistory_SaveAndGet(t *testing.T) {
	h := NewHistory(t.TempDir())

	id, err := h.Save("alice", sampleReport("lease"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	entry, err := h.Get("alice", id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.User != "alice" {
		t.Errorf("User = %q, want alice", entry.User)
	}
	if entry.Report.Document != "lease" {
		t.Errorf("Document = %q, want lease", entry.Report.Document)
	}
	if len(entry.Report.Clauses) != 2 {
		t.Errorf("expected 2 clauses, got %d", len(entry.Report.Clauses))
	}
}

func TestHistory_ListNewestFirst(t *testing.T) {
	h := NewHistory(t.TempDir())

	for _, doc := range []string{"first", "second", "third"} {
		if _, err := h.Save("bob", sampleReport(doc)); err != nil {
			t.Fatalf("Save(%s): %v", doc, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	summaries, err := h.List("bob", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	if summaries[0].Document != "third" || summaries[2].Document != "first" {
		t.Errorf("unexpected ordering: %s, %s, %s",
			summaries[0].Document, summaries[1].Document, summaries[2].Document)
	}
	if summaries[0].HighRisk != 1 {
		t.Errorf("HighRisk = %d, want 1", summaries[0].HighRisk)
	}
	if summaries[0].Clauses != 2 {
		t.Errorf("Clauses = %d, want 2", summaries[0].Clauses)
	}
}

func TestHistory_ListHonorsLimit(t *testing.T) {
	h := NewHistory(t.TempDir())

	for i := 0; i < 5; i++ {
		if _, err := h.Save("carol", sampleReport("doc")); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	summaries, err := h.List("carol", 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 2 {
		t.Errorf("expected 2 summaries, got %d", len(summaries))
	}
}

func TestHistory_ListUnknownUser(t *testing.T) {
	h := NewHistory(t.TempDir())

	summaries, err := h.List("nobody", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected no summaries, got %d", len(summaries))
	}
}

func TestHistory_UsersIsolated(t *testing.T) {
	h := NewHistory(t.TempDir())

	if _, err := h.Save("alice", sampleReport("lease")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	summaries, err := h.List("bob", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("bob sees %d of alice's entries", len(summaries))
	}
}

func TestHistory_EmptyUserDefaults(t *testing.T) {
	h := NewHistory(t.TempDir())

	id, err := h.Save("", sampleReport("terms"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	entry, err := h.Get("", id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.User != "default" {
		t.Errorf("User = %q, want default", entry.User)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Lease Agreement", "my-lease-agreement"},
		{"../../etc/passwd", "etcpasswd"},
		{"report_2024-06", "report_2024-06"},
		{"", "doc"},
		{"###", "doc"},
	}
	for _, tc := range cases {
		if got := sanitize(tc.in); got != tc.want {
			t.Errorf("sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
