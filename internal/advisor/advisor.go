// Package advisor provides canned-text financial recommendations through a
// synchronous call to an external language-model endpoint. Providers are
// adapted to a single Advisor interface and chosen by configuration.
package advisor

import (
	"context"
	"errors"
)

// Advisor produces a list of plain-text recommendation lines for a prompt.
type Advisor interface {
	Advise(ctx context.Context, prompt string) ([]string, error)
	Close() error
}

var ErrNotConfigured = errors.New("advisor not configured")

// systemPrompt demands a fixed shape so responses can be split line-wise.
const systemPrompt = "You are a financial advisor. Return EXACTLY a list of 5 recommendations " +
	"in plain text, one per line, without numbering, without preface or extra explanation."
