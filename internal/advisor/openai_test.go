package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"fintrack/pkg/config"

	"go.uber.org/zap"
)

func TestSplitRecommendations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain lines",
			content: "Cook at home\nCancel unused subscriptions",
			want:    []string{"Cook at home", "Cancel unused subscriptions"},
		},
		{
			name:    "dash and dot bullets stripped",
			content: "- Cook at home\n• Walk more\n1. Save 10%",
			want:    []string{"Cook at home", "Walk more", "Save 10%"},
		},
		{
			name:    "blank lines skipped",
			content: "\nFirst\n\n  \nSecond\n",
			want:    []string{"First", "Second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitRecommendations(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRecommendations() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestOpenAIAdvisorAdvise(t *testing.T) {
	var gotAuth, gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReferer = r.Header.Get("Referer")

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q, want test-model", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %#v", req.Messages)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "- Spend less on food\n- Track every expense"}},
			},
		})
	}))
	defer server.Close()

	cfg := &config.AdvisorConfig{
		APIURL:  server.URL,
		APIKey:  "key-123",
		Model:   "test-model",
		Referer: "https://example.com",
	}
	a := NewOpenAIAdvisor(cfg, zap.NewNop())

	lines, err := a.Advise(context.Background(), "monthly spending: 350.00")
	if err != nil {
		t.Fatalf("advise: %v", err)
	}

	want := []string{"Spend less on food", "Track every expense"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %#v, want %#v", lines, want)
	}
	if gotAuth != "Bearer key-123" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotReferer != "https://example.com" {
		t.Errorf("referer = %q", gotReferer)
	}
}

func TestOpenAIAdvisorNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	a := NewOpenAIAdvisor(&config.AdvisorConfig{APIURL: server.URL, Model: "m"}, zap.NewNop())
	if _, err := a.Advise(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestOpenAIAdvisorMissingURL(t *testing.T) {
	a := NewOpenAIAdvisor(&config.AdvisorConfig{}, zap.NewNop())
	if _, err := a.Advise(context.Background(), "prompt"); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
