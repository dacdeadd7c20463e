package advisor

import (
	"context"
	"fmt"

	"fintrack/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// gigaChatAdvisor adapts the GigaChat SDK to the Advisor interface.
type gigaChatAdvisor struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewGigaChatAdvisor(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (Advisor, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = systemPrompt
	model.Temperature = 0.2

	return &gigaChatAdvisor{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (a *gigaChatAdvisor) Advise(ctx context.Context, prompt string) ([]string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := a.model.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from LLM")
	}

	return splitRecommendations(resp.Choices[0].Message.Content), nil
}

func (a *gigaChatAdvisor) Close() error {
	if a.client != nil {
		a.client.Close()
	}
	return nil
}
