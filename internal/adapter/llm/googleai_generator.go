package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studysupport/internal/domain"
	"studysupport/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GoogleAIGenerator implements domain.TextGenerator over the hosted Gemini
// model: one prompt in, one completion out.
type GoogleAIGenerator struct {
	llm     *googleai.GoogleAI
	timeout time.Duration
}

// NewGoogleAIGenerator creates a generator bound to the given model.
func NewGoogleAIGenerator(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GoogleAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("googleai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo GoogleAI client: %w", err)
	}

	return &GoogleAIGenerator{llm: client, timeout: timeout}, nil
}

// Generate sends the prompt and returns the model's trimmed completion.
func (g *GoogleAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.2))
	if err != nil {
		logger.Get().Error("LLM call failed", zap.Error(err))
		return "", domain.NewExternalServiceError("model", err)
	}
	return strings.TrimSpace(response), nil
}

var _ domain.TextGenerator = (*GoogleAIGenerator)(nil)
