package producer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/parleyhq/parley/internal/logger"
	"github.com/parleyhq/parley/internal/widget"
)

// maxHistoryTurns bounds how much conversation context is replayed to the
// remote endpoint on each turn.
const maxHistoryTurns = 10

// OpenAI is the remote producer: it forwards the user's text to an
// OpenAI-compatible chat-completions endpoint. Errors are returned to the
// caller, which substitutes the widget's fallback reply.
type OpenAI struct {
	client       *openai.Client
	model        string
	businessName string

	mu      sync.Mutex
	history []openai.ChatCompletionMessage
}

// OpenAIConfig configures the remote producer.
type OpenAIConfig struct {
	APIKey       string
	BaseURL      string // Optional; any OpenAI-compatible endpoint works
	Model        string
	BusinessName string
}

// NewOpenAI creates a remote producer.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &OpenAI{
		client:       openai.NewClientWithConfig(clientCfg),
		model:        cfg.Model,
		businessName: cfg.BusinessName,
	}
}

func (o *OpenAI) systemPrompt() string {
	return fmt.Sprintf(`You are the friendly support assistant for %s, a small business.
Answer briefly and helpfully in one or two sentences. If the customer marks
their request as urgent, acknowledge the escalation and promise that a team
member will reach out right away.`, o.businessName)
}

// NextReply sends the user text plus bounded conversation history to the
// endpoint and returns the assistant's reply.
func (o *OpenAI) NextReply(ctx context.Context, userText string) (widget.Reply, error) {
	o.mu.Lock()
	messages := make([]openai.ChatCompletionMessage, 0, len(o.history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: o.systemPrompt(),
	})
	messages = append(messages, o.history...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})
	o.mu.Unlock()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: messages,
	})
	if err != nil {
		return widget.Reply{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return widget.Reply{}, fmt.Errorf("no response choices")
	}

	replyText := strings.TrimSpace(resp.Choices[0].Message.Content)
	o.remember(userText, replyText)

	logger.Debug("Producer: remote reply of %d chars", len(replyText))
	return widget.Reply{Text: replyText}, nil
}

// remember appends the exchanged turn to the rolling history window.
func (o *OpenAI) remember(userText, replyText string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.history = append(o.history,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userText},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: replyText},
	)
	if len(o.history) > maxHistoryTurns*2 {
		o.history = o.history[len(o.history)-maxHistoryTurns*2:]
	}
}
