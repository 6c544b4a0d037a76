// Package improver asks an external model to review and rewrite a prompt.
package improver

import (
	"context"
	"log"

	"github.com/llmgate/promptcheck/models"
	"github.com/llmgate/promptcheck/utils"
)

// TextGenerator is a text-in/text-out model provider.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

const logPreviewSize = 120

type Improver struct {
	generator TextGenerator
	provider  string
	model     string
}

func NewImprover(generator TextGenerator, provider, model string) *Improver {
	return &Improver{
		generator: generator,
		provider:  provider,
		model:     model,
	}
}

func (i *Improver) Provider() string {
	return i.provider
}

func (i *Improver) Model() string {
	return i.model
}

// Improve wraps content in the instruction template and returns the model's
// reply unmodified. Provider failures come back as *models.DependencyError.
func (i *Improver) Improve(ctx context.Context, content string) (string, error) {
	prompt := utils.BuildImprovePrompt(content)

	response, err := i.generator.GenerateText(ctx, i.model, prompt)
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return "", &models.DependencyError{Provider: i.provider, Err: err}
	}

	log.Printf("%s/%s replied: %s", i.provider, i.model, utils.Truncate(response, logPreviewSize))
	log.Println(response)
	return response, nil
}
