package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/clauselens/clauselens/internal/worker"
)

// Summary register names
const (
	RegisterELI5          = "eli5"
	RegisterPlainLanguage = "plain_language"
	RegisterDetailed      = "detailed"
)

// Input longer than this is truncated before prompting
const maxPromptChars = 4000

// Summarizer produces the three summary registers for a document. With no
// provider configured it degrades to a deterministic extractive summary.
// Summaries never feed back into segmentation or risk scoring.
type Summarizer struct {
	provider Provider
	limiter  *worker.Limiter
}

// NewSummarizer creates a summarizer. provider may be nil (offline mode);
// limiter may be nil to disable throttling.
func NewSummarizer(provider Provider, limiter *worker.Limiter) *Summarizer {
	return &Summarizer{provider: provider, limiter: limiter}
}

// IsEnabled reports whether a backing provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// Generate returns the eli5, plain_language and detailed summaries. Provider
// errors fall back to the extractive summary rather than failing.
func (s *Summarizer) Generate(ctx context.Context, text string) map[string]string {
	if s.provider == nil {
		return extractiveSummaries(text)
	}

	truncated := text
	if len(truncated) > maxPromptChars {
		truncated = truncated[:maxPromptChars] + "..."
	}

	requests := []struct {
		register    string
		prompt      string
		maxTokens   int
		temperature float32
	}{
		{
			RegisterELI5,
			"Explain this legal document like I'm 5 years old. Use simple words and analogies. " +
				"Focus on what the person can and cannot do, and what happens if they break the rules.\n\n" +
				"Document: " + truncated,
			300, 0.7,
		},
		{
			RegisterPlainLanguage,
			"Summarize this legal document in plain, everyday language. Remove legal jargon and " +
				"explain what it means in simple terms that anyone can understand.\n\n" +
				"Document: " + truncated,
			400, 0.5,
		},
		{
			RegisterDetailed,
			"Provide a comprehensive summary of this legal document. Include all key terms, " +
				"conditions, obligations, and important details while maintaining accuracy.\n\n" +
				"Document: " + truncated,
			600, 0.3,
		},
	}

	summaries := make(map[string]string, len(requests))
	for _, r := range requests {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return extractiveSummaries(text)
			}
		}

		result, err := s.provider.Complete(ctx, CompletionRequest{
			Prompt:      r.prompt,
			MaxTokens:   r.maxTokens,
			Temperature: r.temperature,
		})
		if err != nil {
			return extractiveSummaries(text)
		}
		summaries[r.register] = result
	}

	return summaries
}

// extractiveSummaries builds basic summaries from the leading sentences
func extractiveSummaries(text string) map[string]string {
	sentences := strings.Split(text, ".")

	var summary string
	if len(sentences) <= 3 {
		summary = text
	} else {
		parts := make([]string, 0, 3)
		for _, s := range sentences[:3] {
			parts = append(parts, strings.TrimSpace(s))
		}
		summary = strings.Join(parts, ". ") + "."
	}

	head := text
	if len(head) > 500 {
		head = head[:500]
	}

	return map[string]string{
		RegisterELI5:          "This document is about rules and promises. " + summary,
		RegisterPlainLanguage: summary,
		RegisterDetailed:      fmt.Sprintf("Document Summary: %s\n\nFull Text: %s...", summary, head),
	}
}
