// backend/src/services/interfaces.go
package services

import (
	"context"
	"errors"
)

// Common service errors.
var (
	ErrLLMUnavailable = errors.New("llm service is not configured")
	ErrEmptyResponse  = errors.New("llm returned an empty response")
)

// LLMService is the boundary to the generative text backend. It is
// treated as an opaque, possibly slow, possibly failing completion
// function; no schema is enforced on its output.
type LLMService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
