package advisor

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

type stubAdvisor struct {
	lines []string
	err   error
}

func (s stubAdvisor) Advise(context.Context, string) ([]string, error) {
	return s.lines, s.err
}

func (s stubAdvisor) Close() error { return nil }

func TestFallbackPassesThroughSuccess(t *testing.T) {
	want := []string{"one", "two"}
	a := WithFallback(stubAdvisor{lines: want}, zap.NewNop())

	got, err := a.Advise(context.Background(), "p")
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %#v, want %#v", got, want)
	}
}

func TestFallbackOnNotConfigured(t *testing.T) {
	a := WithFallback(disabledAdvisor{}, zap.NewNop())

	got, err := a.Advise(context.Background(), "p")
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if len(got) != 1 || got[0] != adviceNotConfigured {
		t.Errorf("lines = %#v, want configuration hint", got)
	}
}

func TestFallbackOnTransportError(t *testing.T) {
	a := WithFallback(stubAdvisor{err: errors.New("connection refused")}, zap.NewNop())

	got, err := a.Advise(context.Background(), "p")
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if len(got) != 1 || got[0] != adviceUnavailable {
		t.Errorf("lines = %#v, want unavailability notice", got)
	}
}
