package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/clauselens/clauselens/internal/input"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/worker"
	"github.com/spf13/cobra"
)

var (
	chatDocument string
	chatTimeout  time.Duration
	chatSuggest  bool
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask a question about a legal document",
	Long: `Chat answers one question, optionally grounded in a document given with
--doc. With OPENAI_API_KEY set it uses the configured LLM; without it,
keyword-matched guidance responses are used.

Example:
  clauselens chat "What are the termination terms?" --doc contract.txt
  clauselens chat --suggest --doc contract.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatDocument, "doc", "", "document to use as context (file path)")
	chatCmd.Flags().DurationVar(&chatTimeout, "timeout", time.Minute, "response timeout")
	chatCmd.Flags().BoolVar(&chatSuggest, "suggest", false, "print suggested questions and exit")
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatSuggest {
		for _, q := range llm.SuggestedQuestions() {
			fmt.Printf("  - %s\n", q)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a question is required (or use --suggest)")
	}
	question := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	defer cancel()

	var documentContext string
	if chatDocument != "" {
		text, err := input.ReadFile(chatDocument)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		documentContext = text
	}

	var provider llm.Provider
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config := llm.DefaultConfig()
		config.Provider = "openai"
		config.APIKey = apiKey

		p, err := llm.NewProvider(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM unavailable, using offline responses: %v\n", err)
		} else {
			provider = p
		}
	}

	chat := llm.NewChat(provider, worker.NewLimiter(1, 1))
	response := chat.Respond(ctx, question, documentContext)

	fmt.Println(response.Response)
	if verbose {
		fmt.Fprintf(os.Stderr, "\n(confidence %.1f)\n", response.Confidence)
	}

	return nil
}
