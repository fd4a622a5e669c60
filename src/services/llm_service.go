// backend/src/services/llm_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/username/finassist/backend/src/logger"
)

type geminiLLMService struct {
	client *genai.Client
	model  string
}

// NewGeminiLLMService creates an LLMService backed by the Gemini API.
// The API key is taken from the GEMINI_API_KEY environment variable by
// the underlying client.
func NewGeminiLLMService(ctx context.Context, model string) (LLMService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &geminiLLMService{client: client, model: model}, nil
}

func (s *geminiLLMService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	logger.FromContext(ctx).Debug("LLM completion succeeded", "model", s.model, "chars", len(text))
	return text, nil
}
