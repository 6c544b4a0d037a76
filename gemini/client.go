package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/llmgate/promptcheck/internal/config"
)

var errNoCandidates = errors.New("gemini returned no candidates")

type GeminiClient struct {
	geminiConfig config.GeminiConfig
}

func NewGeminiClient(geminiConfig config.GeminiConfig) *GeminiClient {
	return &GeminiClient{
		geminiConfig: geminiConfig,
	}
}

// GenerateText sends a single text prompt to the Gemini model and returns the
// text of the first candidate.
func (c GeminiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.geminiConfig.Key))
	if err != nil {
		return "", err
	}
	defer client.Close()

	genModel := client.GenerativeModel(model)

	geminiResponse, err := genModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return responseText(geminiResponse)
}

func responseText(geminiResp *genai.GenerateContentResponse) (string, error) {
	if geminiResp == nil || len(geminiResp.Candidates) == 0 {
		return "", errNoCandidates
	}

	candidate := geminiResp.Candidates[0]
	if candidate.Content == nil {
		return "", errNoCandidates
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String(), nil
}
