package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"fintrack/pkg/config"

	"go.uber.org/zap"
)

var (
	bulletPrefix   = regexp.MustCompile(`^[-•]\s?`)
	numberedPrefix = regexp.MustCompile(`^\d+\.\s`)
)

// openAIAdvisor posts to any OpenAI-compatible chat-completions endpoint.
type openAIAdvisor struct {
	cfg    *config.AdvisorConfig
	client *http.Client
	logger *zap.Logger
}

func NewOpenAIAdvisor(cfg *config.AdvisorConfig, logger *zap.Logger) Advisor {
	return &openAIAdvisor{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
			},
		},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (a *openAIAdvisor) Advise(ctx context.Context, prompt string) ([]string, error) {
	if a.cfg.APIURL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: a.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if a.cfg.Referer != "" {
		req.Header.Set("Referer", a.cfg.Referer)
	}
	if a.cfg.Title != "" {
		req.Header.Set("X-Title", a.cfg.Title)
	}
	if a.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	}

	a.logger.Info("Advisor request",
		zap.String("url", a.cfg.APIURL),
		zap.String("model", a.cfg.Model),
	)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advisor request: %w", err)
	}
	defer resp.Body.Close()

	a.logger.Info("Advisor response", zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("advisor endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode advisor response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("advisor response has no choices")
	}

	return splitRecommendations(parsed.Choices[0].Message.Content), nil
}

func (a *openAIAdvisor) Close() error {
	return nil
}

// splitRecommendations turns the model's plain-text answer into one
// recommendation per line, stripping "-", "•" and "1. " prefixes the model
// sometimes adds despite instructions.
func splitRecommendations(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		t = bulletPrefix.ReplaceAllString(t, "")
		t = numberedPrefix.ReplaceAllString(t, "")
		out = append(out, t)
	}
	return out
}
