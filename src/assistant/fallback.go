// backend/src/assistant/fallback.go
package assistant

import (
	"context"

	"github.com/username/finassist/backend/src/logger"
	"github.com/username/finassist/backend/src/services"
)

// FallbackRouter handles questions the classifier is not confident
// enough about. It forwards the raw question to the generative backend
// and returns its text verbatim; any failure becomes a localized apology
// rather than an error.
type FallbackRouter struct {
	llm services.LLMService
}

// NewFallbackRouter creates a FallbackRouter. A nil llm is allowed and
// behaves as a permanently failing backend.
func NewFallbackRouter(llm services.LLMService) *FallbackRouter {
	return &FallbackRouter{llm: llm}
}

// Route forwards the question and returns the answer text plus whether
// the backend actually produced it (false = apology).
func (f *FallbackRouter) Route(ctx context.Context, question, lang string) (string, bool) {
	if f.llm == nil {
		logger.FromContext(ctx).Warn("Fallback requested but no LLM service is configured")
		return phrasesFor(lang).apology, false
	}
	answer, err := f.llm.Complete(ctx, question)
	if err != nil {
		logger.FromContext(ctx).Error("Fallback LLM call failed", "error", err)
		return phrasesFor(lang).apology, false
	}
	return answer, true
}
