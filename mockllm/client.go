package mockllm

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/llmgate/promptcheck/models"
	"github.com/llmgate/promptcheck/utils"
)

var errMockFailure = errors.New("mock failure: service unavailable")

// MockLLMClient answers like a well behaved model: some prose around a
// ```json block with a few revisions. FailureRate makes a share of calls fail.
type MockLLMClient struct {
	FailureRate float32
	Revisions   int

	mu   sync.Mutex
	rand *rand.Rand
}

func NewMockLLMClient() *MockLLMClient {
	return &MockLLMClient{
		Revisions: 2,
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateText returns a canned reply for the prompt's last quoted line.
func (c *MockLLMClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.FailureRate > 0 {
		c.mu.Lock()
		r := c.rand.Float32()
		c.mu.Unlock()
		if r < c.FailureRate {
			return "", errMockFailure
		}
	}

	original := quotedTail(prompt)
	contents := []string{
		"Rewrite for clarity: %s",
		"Be specific about the expected output: %s",
		"State the audience and constraints first, then ask: %s",
		"Keep it short: %s",
	}
	explains := []string{
		"Reworded for conciseness and specificity.",
		"Added the expected output format.",
		"Expanded details to clarify responsibilities.",
		"Removed filler words.",
	}

	count := c.Revisions
	if count <= 0 {
		count = 1
	}

	revisions := make([]models.Message, 0, count)
	for i := 0; i < count; i++ {
		revisions = append(revisions, models.Message{
			Role:    models.RoleAssistant,
			Option:  i + 1,
			Content: strings.Replace(contents[i%len(contents)], "%s", original, 1),
			Explain: explains[i%len(explains)],
		})
	}

	return "Here are improved versions of your prompt:\n\n" + utils.ToFencedJSON(revisions) + "\n", nil
}

func quotedTail(prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	end := strings.LastIndex(trimmed, "\"")
	if end <= 0 {
		return trimmed
	}
	start := strings.LastIndex(trimmed[:end], "\n")
	return strings.Trim(trimmed[start+1:end+1], "\"")
}
