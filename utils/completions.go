package utils

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/sashabaranov/go-openai"

	"github.com/llmgate/promptcheck/models"
)

const (
	missingJSONBlockReason = "Failed to parse JSON from response"
	invalidFormatReason    = "Invalid response format"
)

var jsonBlockPattern = regexp.MustCompile("```json\\n([\\s\\S]*?)\\n```")

const improvePromptTemplate = `
You are a senior prompt engineer who specializes in optimizing prompts for AI models.
Review the user's prompt below and improve it. Return improved versions with explanations.

Guidelines:
- Check the prompt for clarity, conciseness and effectiveness.
- Provide one or more revised versions with better quality.
- Explain what was improved in each revision.
- Keep the original intent while improving wording and structure.

Response format (JSON array):
[
  {
    "role": "assistant",
    "option": <number>,  // unique option number for each revision
    "content": "<revised prompt>",
    "explain": "<explanation of the improvements>"
  }
]

Example:
[
  {
    "role": "assistant",
    "option": 1,
    "content": "You are a senior AI prompt engineer. Refine user prompts for clarity and effectiveness.",
    "explain": "Reworded for conciseness and specificity."
  },
  {
    "role": "assistant",
    "option": 2,
    "content": "Help users write precise, high quality AI prompts by reviewing and refining their input.",
    "explain": "Expanded details to clarify responsibilities."
  }
]

---

The user's prompt to improve:

`

// BuildImprovePrompt appends the user's prompt, as is, to the instruction
// template sent to the model.
func BuildImprovePrompt(content string) string {
	return improvePromptTemplate + "\"" + content + "\"\n"
}

func ToChatCompletionRequestFromPrompt(prompt, model string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
}

func ToResponseStringFromChatCompletionResponse(openaiResponse openai.ChatCompletionResponse) string {
	return openaiResponse.Choices[0].Message.Content
}

// ExtractJSONBlock returns the body of the first ```json fenced block in a
// model reply.
func ExtractJSONBlock(response string) (string, error) {
	match := jsonBlockPattern.FindStringSubmatch(response)
	if match == nil || match[1] == "" {
		return "", &models.FormatError{Reason: missingJSONBlockReason}
	}
	return match[1], nil
}

// ParseRevisions extracts and decodes the JSON array of revisions embedded in
// a model reply. Either every element is returned or an error is.
func ParseRevisions(response string) ([]models.Message, error) {
	block, err := ExtractJSONBlock(response)
	if err != nil {
		return nil, err
	}

	data := bytes.TrimSpace([]byte(block))
	if len(data) == 0 || data[0] != '[' {
		return nil, &models.FormatError{Reason: invalidFormatReason}
	}

	var revisions []models.Message
	if err := json.Unmarshal(data, &revisions); err != nil {
		return nil, &models.FormatError{Reason: invalidFormatReason, Err: err}
	}

	return revisions, nil
}

// ToFencedJSON renders v the way models are asked to answer: a ```json block.
func ToFencedJSON(v interface{}) string {
	return "```json\n" + ToJSONString(v) + "\n```"
}
