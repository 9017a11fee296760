package llm

import (
	"context"
	"strings"

	"github.com/clauselens/clauselens/internal/worker"
)

const chatSystemPrompt = `You are a helpful legal document assistant. You help users understand legal documents by:
1. Explaining legal terms in simple language
2. Identifying potential risks and concerns
3. Answering questions about document content
4. Providing general guidance (but always recommend consulting a lawyer for legal advice)

Always be helpful, accurate, and remind users that you provide general information only, not legal advice.`

// Chat answers questions about an analyzed document. Without a provider it
// routes to keyword-matched canned responses.
type Chat struct {
	provider Provider
	limiter  *worker.Limiter
}

// ChatResponse is one answer with a rough confidence
type ChatResponse struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
}

// NewChat creates a chat helper. provider may be nil (offline mode)
func NewChat(provider Provider, limiter *worker.Limiter) *Chat {
	return &Chat{provider: provider, limiter: limiter}
}

// Respond answers one question, optionally grounded in document context.
// Provider failures degrade to the canned responses; Respond never errors.
func (c *Chat) Respond(ctx context.Context, message, documentContext string) ChatResponse {
	if c.provider == nil {
		return fallbackResponse(message, documentContext)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fallbackResponse(message, documentContext)
		}
	}

	prompt := message
	if documentContext != "" {
		prompt = "Document context: " + documentContext + "\n\nUser question: " + message
	}

	answer, err := c.provider.Complete(ctx, CompletionRequest{
		System:      chatSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return fallbackResponse(message, documentContext)
	}

	return ChatResponse{Response: answer, Confidence: 0.9}
}

// SuggestedQuestions returns starter questions for a document conversation
func SuggestedQuestions() []string {
	return []string{
		"What are the main risks in this document?",
		"Can you explain the liability clauses?",
		"What happens if I breach this agreement?",
		"Are there any automatic termination clauses?",
		"What are my payment obligations?",
		"What confidential information is protected?",
		"Can you explain the key terms in simple language?",
		"What should I be most concerned about?",
		"Are there any unusual or risky clauses?",
		"What are my rights under this agreement?",
	}
}

// Keyword-routed canned answers for offline use
var fallbackRoutes = []struct {
	keywords []string
	response string
}{
	{[]string{"what", "explain", "mean", "meaning"},
		"I can help explain legal terms and concepts. Based on the document analysis, I recommend reviewing the risk assessment and summaries provided. For specific legal questions, please consult with a qualified attorney."},
	{[]string{"risk", "dangerous", "safe", "concern"},
		"The risk assessment shows various levels of potential concerns in the document. High-risk clauses are highlighted in red, medium-risk in orange, and low-risk in green. Please review these carefully before making any decisions."},
	{[]string{"sign", "agree", "accept", "contract"},
		"Before signing any legal document, it's important to understand all terms and conditions. Review the summaries provided and consider the risk assessment. I strongly recommend consulting with a legal professional before signing."},
	{[]string{"clause", "section", "paragraph", "term"},
		"The document has been segmented into clauses for easier analysis. Each clause has been analyzed for risk factors and summarized. You can review the detailed breakdown in the document analysis."},
	{[]string{"liability", "damages", "responsible"},
		"Liability and responsibility clauses are important to understand. These determine who is responsible for what and under what circumstances. The risk assessment will highlight any concerning liability terms."},
	{[]string{"terminate", "end", "cancel", "breach"},
		"Termination and breach clauses define when and how the agreement can be ended. These are often high-risk areas that should be carefully reviewed. Check the risk assessment for any concerning termination terms."},
	{[]string{"payment", "fee", "cost", "money"},
		"Payment terms specify when, how much, and under what conditions payments are due. Review these carefully as they often contain important deadlines and penalties."},
	{[]string{"confidential", "secret", "private", "proprietary"},
		"Confidentiality clauses protect sensitive information. These are important for maintaining privacy and protecting business interests. Review these terms carefully."},
}

const defaultFallback = "I'm here to help with your legal document questions. Please feel free to ask about specific terms, clauses, or concerns you have about the document."

func fallbackResponse(message, documentContext string) ChatResponse {
	lower := strings.ToLower(message)

	response := defaultFallback
	for _, route := range fallbackRoutes {
		if containsAny(lower, route.keywords) {
			response = route.response
			break
		}
	}

	if documentContext != "" {
		snippet := documentContext
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		response += "\n\nBased on the document context: " + snippet + "..."
	}

	return ChatResponse{Response: response, Confidence: 0.6}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
