package advisor

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Canned responses served when the real advisor cannot answer.
const (
	adviceNotConfigured = "Enable AI advice by configuring AI_API_URL and AI_API_KEY"
	adviceUnavailable   = "AI advisor unavailable; check API_URL, API_KEY and model"
)

// fallbackAdvisor wraps another Advisor and converts its failures into a
// single canned recommendation line, so the advice endpoint never errors
// out on upstream problems. The underlying error is logged, not returned.
type fallbackAdvisor struct {
	inner  Advisor
	logger *zap.Logger
}

func WithFallback(inner Advisor, logger *zap.Logger) Advisor {
	return &fallbackAdvisor{inner: inner, logger: logger}
}

func (a *fallbackAdvisor) Advise(ctx context.Context, prompt string) ([]string, error) {
	lines, err := a.inner.Advise(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return []string{adviceNotConfigured}, nil
		}
		a.logger.Error("Advisor call failed", zap.Error(err))
		return []string{adviceUnavailable}, nil
	}
	return lines, nil
}

func (a *fallbackAdvisor) Close() error {
	return a.inner.Close()
}

// disabledAdvisor always reports missing configuration; the fallback
// decorator turns that into the setup hint.
type disabledAdvisor struct{}

func (disabledAdvisor) Advise(context.Context, string) ([]string, error) {
	return nil, ErrNotConfigured
}

func (disabledAdvisor) Close() error {
	return nil
}
