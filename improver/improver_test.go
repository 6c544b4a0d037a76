package improver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/llmgate/promptcheck/models"
)

type fakeGenerator struct {
	model    string
	prompt   string
	response string
	err      error
}

func (g *fakeGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	g.model = model
	g.prompt = prompt
	return g.response, g.err
}

func TestImproveReturnsResponseVerbatim(t *testing.T) {
	generator := &fakeGenerator{response: "  not even json  "}
	improver := NewImprover(generator, "gemini", "gemini-2.0-flash")

	response, err := improver.Improve(context.Background(), "write code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response != "  not even json  " {
		t.Errorf("expected verbatim response, got %q", response)
	}
	if generator.model != "gemini-2.0-flash" {
		t.Errorf("unexpected model %q", generator.model)
	}
	if !strings.HasSuffix(generator.prompt, "\"write code\"\n") {
		t.Errorf("expected prompt to end with the user's text, got %q", generator.prompt)
	}
}

func TestImproveWrapsProviderError(t *testing.T) {
	cause := errors.New("quota exceeded")
	improver := NewImprover(&fakeGenerator{err: cause}, "gemini", "gemini-2.0-flash")

	_, err := improver.Improve(context.Background(), "write code")

	var depErr *models.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if depErr.Provider != "gemini" {
		t.Errorf("unexpected provider %q", depErr.Provider)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected error to wrap the provider error")
	}
	if err.Error() != "quota exceeded" {
		t.Errorf("expected provider message, got %q", err.Error())
	}
}
