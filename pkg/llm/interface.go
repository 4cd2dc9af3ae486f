package llm

import "context"

// Completer sends a prompt pair to a chat-completion service and returns the
// raw completion text. Implemented by Client; faked in tests.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
