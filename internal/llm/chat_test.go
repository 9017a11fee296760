package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestChat_OfflineKeywordRouting(t *testing.T) {
	c := NewChat(nil, nil)

	cases := []struct {
		message string
		want    string
	}{
		{"What are the main risks here?", "I can help explain legal terms"},
		{"Is this clause dangerous?", "The risk assessment shows"},
		{"Should I sign this?", "Before signing any legal document"},
		{"How much is the fee?", "Payment terms specify"},
		{"Tell me about the liability here", "Liability and responsibility clauses"},
	}

	for _, tc := range cases {
		got := c.Respond(context.Background(), tc.message, "")
		if !strings.HasPrefix(got.Response, tc.want) {
			t.Errorf("Respond(%q) = %q, want prefix %q", tc.message, got.Response, tc.want)
		}
		if got.Confidence != 0.6 {
			t.Errorf("Respond(%q).Confidence = %v, want 0.6", tc.message, got.Confidence)
		}
	}
}

func TestChat_OfflineDefaultResponse(t *testing.T) {
	c := NewChat(nil, nil)

	got := c.Respond(context.Background(), "hello there", "")
	if !strings.HasPrefix(got.Response, "I'm here to help") {
		t.Errorf("Respond = %q, want default response", got.Response)
	}
}

func TestChat_OfflineIncludesContextSnippet(t *testing.T) {
	c := NewChat(nil, nil)

	docContext := strings.Repeat("x", 300)
	got := c.Respond(context.Background(), "hello", docContext)

	if !strings.Contains(got.Response, "Based on the document context: ") {
		t.Errorf("Respond = %q, missing context lead-in", got.Response)
	}
	if strings.Contains(got.Response, strings.Repeat("x", 250)) {
		t.Errorf("context snippet not truncated to 200 chars")
	}
}

func TestChat_ProviderAnswer(t *testing.T) {
	capture := &captureProvider{}
	c := NewChat(capture, nil)

	got := c.Respond(context.Background(), "What does clause 3 mean?", "Clause 3: the tenant shall pay rent.")

	if got.Response != "ok" {
		t.Errorf("Response = %q, want provider answer", got.Response)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
	if len(capture.prompts) != 1 {
		t.Fatalf("captured %d prompts, want 1", len(capture.prompts))
	}
	if !strings.Contains(capture.prompts[0], "Document context: ") ||
		!strings.Contains(capture.prompts[0], "User question: ") {
		t.Errorf("prompt %q missing context framing", capture.prompts[0])
	}
}

func TestChat_ProviderErrorFallsBack(t *testing.T) {
	provider := &stubProvider{err: errors.New("unreachable")}
	c := NewChat(provider, nil)

	got := c.Respond(context.Background(), "what does this mean?", "")
	if got.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want fallback 0.6", got.Confidence)
	}
	if got.Response == "" {
		t.Error("expected non-empty fallback response")
	}
}

func TestSuggestedQuestions(t *testing.T) {
	questions := SuggestedQuestions()

	if len(questions) != 10 {
		t.Fatalf("expected 10 suggested questions, got %d", len(questions))
	}
	for i, q := range questions {
		if !strings.HasSuffix(q, "?") {
			t.Errorf("question %d %q is not a question", i, q)
		}
	}
}
