// Package limits implements pluggable daily spending ceilings for
// constrained ("micro") expenses. The active policy is chosen at
// construction time and injected into the finance layer.
package limits

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrEmptyUserID = errors.New("user id must not be empty")

// Policy maps a user identifier to that user's daily micro-expense ceiling.
type Policy interface {
	LimitFor(userID string) (decimal.Decimal, error)
}

// FixedPolicy returns the same configured ceiling for every user.
type FixedPolicy struct {
	limit decimal.Decimal
}

func NewFixedPolicy(limit decimal.Decimal) FixedPolicy {
	return FixedPolicy{limit: limit}
}

func (p FixedPolicy) LimitFor(userID string) (decimal.Decimal, error) {
	if userID == "" {
		return decimal.Zero, ErrEmptyUserID
	}
	return p.limit, nil
}

// TierPolicy derives the ceiling from a per-user table, falling back to a
// default ceiling for users with no entry.
type TierPolicy struct {
	ceilings map[string]decimal.Decimal
	fallback decimal.Decimal
}

func NewTierPolicy(ceilings map[string]decimal.Decimal, fallback decimal.Decimal) *TierPolicy {
	if ceilings == nil {
		ceilings = make(map[string]decimal.Decimal)
	}
	return &TierPolicy{ceilings: ceilings, fallback: fallback}
}

func (p *TierPolicy) LimitFor(userID string) (decimal.Decimal, error) {
	if userID == "" {
		return decimal.Zero, ErrEmptyUserID
	}
	if ceiling, ok := p.ceilings[userID]; ok {
		return ceiling, nil
	}
	return p.fallback, nil
}
