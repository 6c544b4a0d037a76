package gemini

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestResponseTextJoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []genai.Part{genai.Text("```json\n"), genai.Text("[]"), genai.Text("\n```")},
				},
			},
			{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}},
			},
		},
	}

	text, err := responseText(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "```json\n[]\n```" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestResponseTextWithoutCandidates(t *testing.T) {
	for _, resp := range []*genai.GenerateContentResponse{nil, {}, {Candidates: []*genai.Candidate{{}}}} {
		if _, err := responseText(resp); !errors.Is(err, errNoCandidates) {
			t.Errorf("expected errNoCandidates, got %v", err)
		}
	}
}
