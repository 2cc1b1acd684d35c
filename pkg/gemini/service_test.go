package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: "model",
				Parts: []genai.Part{
					genai.Text("Classificação: Produtivo\n"),
					genai.Text("Resposta Sugerida: Obrigado pelo contato."),
				},
			},
		}},
	}

	got, err := ResponseText(resp)
	if err != nil {
		t.Fatalf("ResponseText failed: %v", err)
	}
	want := "Classificação: Produtivo\nResposta Sugerida: Obrigado pelo contato."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResponseTextEmpty(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil":           nil,
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}}},
		"no text":       {Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}}}},
	}
	for name, resp := range cases {
		if _, err := ResponseText(resp); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNewGeminiServiceRequiresKey(t *testing.T) {
	if _, err := NewGeminiService(context.Background(), "", ""); err == nil {
		t.Fatal("expected error without api key")
	}
}
