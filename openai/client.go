package openai

import (
	"context"
	"errors"

	openaigo "github.com/sashabaranov/go-openai"

	"github.com/llmgate/promptcheck/internal/config"
	"github.com/llmgate/promptcheck/utils"
)

var errNoChoices = errors.New("openai returned no choices")

type OpenAIClient struct {
	openaiConfig config.OpenAIConfig
}

func NewOpenAIClient(openaiConfig config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		openaiConfig: openaiConfig,
	}
}

// GenerateText calls the Chat Completions API with the prompt as the only
// user message.
func (c OpenAIClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	clientConfig := openaigo.DefaultConfig(c.openaiConfig.Key)
	if c.openaiConfig.BaseUrl != "" {
		clientConfig.BaseURL = c.openaiConfig.BaseUrl
	}
	client := openaigo.NewClientWithConfig(clientConfig)

	response, err := client.CreateChatCompletion(ctx, utils.ToChatCompletionRequestFromPrompt(prompt, model))
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", errNoChoices
	}

	return utils.ToResponseStringFromChatCompletionResponse(response), nil
}
