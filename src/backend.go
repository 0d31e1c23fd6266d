package src

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Backend is the generation service consumed by the pipeline and the
// refiner: one system instruction, one user message, one text reply.
type Backend interface {
	Invoke(ctx context.Context, system, user string) (string, error)
}

// chatBackend talks to an OpenAI-compatible chat completion endpoint. Both
// providers go through it: the cloud endpoint directly, the local one via
// its /v1 compatibility surface.
type chatBackend struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewBackend builds the chat client for the configured provider.
func NewBackend(cfg BackendConfig) Backend {
	var clientCfg openai.ClientConfig
	switch cfg.Provider {
	case ProviderOllama:
		clientCfg = openai.DefaultConfig("ollama")
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/") + "/v1"
	default:
		clientCfg = openai.DefaultConfig(cfg.APIKey)
	}

	return &chatBackend{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

func (b *chatBackend) Invoke(ctx context.Context, system, user string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: b.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
