package advisor

import (
	"context"
	"fmt"

	"fintrack/pkg/config"

	"go.uber.org/zap"
)

// New builds the configured advisory provider wrapped in the fallback
// decorator. The returned Advisor never fails a request on upstream errors.
func New(ctx context.Context, cfg *config.AdvisorConfig, logger *zap.Logger) (Advisor, error) {
	var (
		inner Advisor
		err   error
	)

	switch cfg.Provider {
	case "openai":
		inner = NewOpenAIAdvisor(cfg, logger)
	case "gigachat":
		inner, err = NewGigaChatAdvisor(ctx, &cfg.GigaChat, logger)
		if err != nil {
			if err == ErrNotConfigured {
				inner = disabledAdvisor{}
			} else {
				return nil, err
			}
		}
	case "disabled":
		inner = disabledAdvisor{}
	default:
		return nil, fmt.Errorf("unsupported advisor provider: %s", cfg.Provider)
	}

	return WithFallback(inner, logger), nil
}
