package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/llmgate/promptcheck/models"
)

func TestBuildImprovePromptAppendsContentVerbatim(t *testing.T) {
	content := `write "code" with 100% {braces} and \n escapes`

	prompt := BuildImprovePrompt(content)

	if !strings.HasSuffix(prompt, "\""+content+"\"\n") {
		t.Fatalf("expected prompt to end with the raw content, got %q", prompt[len(prompt)-80:])
	}
	for _, field := range []string{`"role"`, `"option"`, `"content"`, `"explain"`} {
		if !strings.Contains(prompt, field) {
			t.Errorf("expected template to describe field %s", field)
		}
	}
}

func TestParseRevisions(t *testing.T) {
	response := "Here you go:\n```json\n" +
		`[{"role":"assistant","option":1,"content":"a","explain":"x"},` +
		`{"role":"assistant","option":2,"content":"b","explain":"y"}]` +
		"\n```\nHope it helps."

	revisions, err := ParseRevisions(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revisions) != 2 {
		t.Fatalf("expected 2 revisions, got %d", len(revisions))
	}
	if revisions[0].Option != 1 || revisions[1].Option != 2 {
		t.Errorf("revisions out of order: %+v", revisions)
	}
	if revisions[1].Role != models.RoleAssistant || revisions[1].Content != "b" || revisions[1].Explain != "y" {
		t.Errorf("unexpected second revision: %+v", revisions[1])
	}
}

func TestParseRevisionsUsesFirstBlock(t *testing.T) {
	response := "```json\n[{\"option\":1}]\n```\n```json\n[{\"option\":2},{\"option\":3}]\n```"

	revisions, err := ParseRevisions(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revisions) != 1 || revisions[0].Option != 1 {
		t.Errorf("expected only the first block, got %+v", revisions)
	}
}

func TestParseRevisionsEmptyArray(t *testing.T) {
	revisions, err := ParseRevisions("```json\n[]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revisions) != 0 {
		t.Errorf("expected no revisions, got %d", len(revisions))
	}
}

func TestParseRevisionsFailures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		reason   string
	}{
		{"no block", "just some prose", missingJSONBlockReason},
		{"unlabeled block", "```\n[]\n```", missingJSONBlockReason},
		{"unterminated block", "```json\n[]", missingJSONBlockReason},
		{"empty block", "```json\n\n```", missingJSONBlockReason},
		{"invalid json", "```json\n[{\"option\": 1,]\n```", invalidFormatReason},
		{"object", "```json\n{\"option\": 1}\n```", invalidFormatReason},
		{"null", "```json\nnull\n```", invalidFormatReason},
		{"string", "```json\n\"text\"\n```", invalidFormatReason},
		{"string option", "```json\n[{\"role\":\"assistant\",\"option\":\"1\"}]\n```", invalidFormatReason},
		{"fractional option", "```json\n[{\"role\":\"assistant\",\"option\":1.5}]\n```", invalidFormatReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revisions, err := ParseRevisions(tt.response)
			if revisions != nil {
				t.Errorf("expected no revisions, got %+v", revisions)
			}
			var formatErr *models.FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected FormatError, got %v", err)
			}
			if formatErr.Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, formatErr.Reason)
			}
		})
	}
}

func TestToFencedJSONRoundTrip(t *testing.T) {
	messages := []models.Message{{Role: models.RoleAssistant, Option: 7, Content: "c", Explain: "e"}}

	revisions, err := ParseRevisions("prefix\n" + ToFencedJSON(messages))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revisions) != 1 || revisions[0] != messages[0] {
		t.Errorf("unexpected revisions: %+v", revisions)
	}
}

func TestToChatCompletionRequestFromPrompt(t *testing.T) {
	request := ToChatCompletionRequestFromPrompt("improve me", "gpt-4o-mini")

	if request.Model != "gpt-4o-mini" {
		t.Errorf("unexpected model %q", request.Model)
	}
	if len(request.Messages) != 1 || request.Messages[0].Role != openai.ChatMessageRoleUser || request.Messages[0].Content != "improve me" {
		t.Errorf("unexpected messages: %+v", request.Messages)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("a longer sentence", 8); got != "a lon..." {
		t.Errorf("got %q", got)
	}
}
