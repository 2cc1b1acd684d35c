package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func TestAnthropicGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("unexpected api key header %q", got)
		}
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Model != "claude-test" || len(body.Messages) != 1 || body.Messages[0].Role != "user" {
			t.Errorf("unexpected request body %+v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Classificação: Improdutivo\nResposta Sugerida: Obrigado!"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 8}
		}`))
	}))
	defer srv.Close()

	svc := NewAnthropicService("test-key", "claude-test", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	out, err := svc.Generate(context.Background(), "classify")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if out != "Classificação: Improdutivo\nResposta Sugerida: Obrigado!" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAnthropicGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	}))
	defer srv.Close()

	svc := NewAnthropicService("test-key", "claude-test", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	if _, err := svc.Generate(context.Background(), "classify"); err == nil {
		t.Fatal("expected error")
	}
}
