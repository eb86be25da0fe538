package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ChatModelInterface is the minimal chat-completion surface the intent
// service needs. Kept small so tests can stub it.
type ChatModelInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type OpenAIChatModel struct {
	client *openai.Client
	model  string
}

// NewOpenAIChatModel creates a chat client for intent extraction.
func NewOpenAIChatModel(apiKey, model string) ChatModelInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIChatModel{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (m *OpenAIChatModel) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: 0.1,
		MaxTokens:   300,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
