package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestOllamaGenerate(t *testing.T) {
	var gotModel, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Stream {
			t.Errorf("expected stream=false")
		}
		gotModel, gotPrompt = body.Model, body.Prompt
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "Classificação: Produtivo\nResposta Sugerida: Ok",
			"done":     true,
		})
	}))
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "mistral")
	out, err := svc.Generate(context.Background(), "classify this")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if out != "Classificação: Produtivo\nResposta Sugerida: Ok" {
		t.Fatalf("unexpected output %q", out)
	}
	if gotModel != "mistral" || gotPrompt != "classify this" {
		t.Fatalf("unexpected request model=%q prompt=%q", gotModel, gotPrompt)
	}
}

func TestOllamaGenerateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllamaService(srv.URL, "missing").Generate(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestOllamaGenerateHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := NewOllamaService(srv.URL, "m").Generate(ctx, "x"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestOllamaUsesRuntimeSettings(t *testing.T) {
	hits := map[string]int{}
	newServer := func(name string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits[name]++
			_, _ = w.Write([]byte(`{"response":"ok","done":true}`))
		}))
	}
	first, second := newServer("first"), newServer("second")
	defer first.Close()
	defer second.Close()

	settings := NewRuntimeSettings(first.URL, "llama3")
	svc := NewOllamaServiceWithGetters(settings.OllamaBaseURL, settings.OllamaModel)

	if _, err := svc.Generate(context.Background(), "x"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	settings.UpdateOllama(second.URL, "")
	if _, err := svc.Generate(context.Background(), "x"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if hits["first"] != 1 || hits["second"] != 1 {
		t.Fatalf("expected one call per server, got %v", hits)
	}
	if settings.OllamaModel() != "llama3" {
		t.Fatalf("empty model update must keep the previous model, got %q", settings.OllamaModel())
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	defer srv.Close()

	status, err := Ping(context.Background(), srv.Client(), srv.URL)
	if err != nil || status != http.StatusOK {
		t.Fatalf("expected 200, got status=%d err=%v", status, err)
	}
}
