package llm

import "context"

// Generator is a minimal abstraction for text-generation LLMs used by the
// domain. It intentionally hides concrete providers to preserve dependency
// direction.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
