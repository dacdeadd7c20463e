package limits

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFixedPolicyReturnsConstant(t *testing.T) {
	policy := NewFixedPolicy(dec("50.00"))

	for _, userID := range []string{"alice", "bob", "3f1c2a00-0000-0000-0000-000000000000"} {
		got, err := policy.LimitFor(userID)
		if err != nil {
			t.Fatalf("LimitFor(%q): %v", userID, err)
		}
		if !got.Equal(dec("50.00")) {
			t.Errorf("LimitFor(%q) = %s, want 50.00", userID, got)
		}
	}
}

func TestFixedPolicyRejectsEmptyUserID(t *testing.T) {
	policy := NewFixedPolicy(dec("50.00"))
	if _, err := policy.LimitFor(""); err != ErrEmptyUserID {
		t.Fatalf("expected ErrEmptyUserID, got %v", err)
	}
}

func TestTierPolicy(t *testing.T) {
	policy := NewTierPolicy(map[string]decimal.Decimal{
		"premium-user": dec("200.00"),
	}, dec("25.00"))

	tests := []struct {
		name   string
		userID string
		want   string
	}{
		{"known user gets tier ceiling", "premium-user", "200.00"},
		{"unknown user gets fallback", "someone-else", "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.LimitFor(tt.userID)
			if err != nil {
				t.Fatalf("LimitFor: %v", err)
			}
			if !got.Equal(dec(tt.want)) {
				t.Errorf("LimitFor(%q) = %s, want %s", tt.userID, got, tt.want)
			}
		})
	}

	if _, err := policy.LimitFor(""); err != ErrEmptyUserID {
		t.Fatalf("expected ErrEmptyUserID, got %v", err)
	}
}
