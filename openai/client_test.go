package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openaigo "github.com/sashabaranov/go-openai"

	"github.com/llmgate/promptcheck/internal/config"
)

func newTestServer(t *testing.T, response openaigo.ChatCompletionResponse) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", r.Header.Get("Authorization"))
		}

		var request openaigo.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if request.Model != "gpt-test" || len(request.Messages) != 1 || request.Messages[0].Content != "improve me" {
			t.Errorf("unexpected request: %+v", request)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGenerateText(t *testing.T) {
	server := newTestServer(t, openaigo.ChatCompletionResponse{
		Choices: []openaigo.ChatCompletionChoice{
			{Message: openaigo.ChatCompletionMessage{Role: openaigo.ChatMessageRoleAssistant, Content: "revised"}},
		},
	})

	client := NewOpenAIClient(config.OpenAIConfig{Key: "test-key", BaseUrl: server.URL + "/v1"})
	text, err := client.GenerateText(context.Background(), "gpt-test", "improve me")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "revised" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestGenerateTextWithoutChoices(t *testing.T) {
	server := newTestServer(t, openaigo.ChatCompletionResponse{})

	client := NewOpenAIClient(config.OpenAIConfig{Key: "test-key", BaseUrl: server.URL + "/v1"})
	if _, err := client.GenerateText(context.Background(), "gpt-test", "improve me"); !errors.Is(err, errNoChoices) {
		t.Errorf("expected errNoChoices, got %v", err)
	}
}
