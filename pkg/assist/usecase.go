package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/artem13815/study-assistant/pkg/llm"
)

// Service describes the application use cases, one per assistant form.
// Each call validates the input, builds the prompt and asks the model;
// blank input is rejected before the model is reached.
type Service interface {
	DebugCode(ctx context.Context, code string) (Report, error)
	ExplainTopic(ctx context.Context, topic string) (Report, error)
	ExplainConcept(ctx context.Context, concept string) (Report, error)
}

type service struct {
	llm llm.Generator
}

// NewService creates the default implementation.
func NewService(model llm.Generator) Service {
	return &service{llm: model}
}

func (s *service) DebugCode(ctx context.Context, code string) (Report, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Report{}, ErrEmptyInput("Please enter some code to debug.")
	}
	answer, err := s.llm.Generate(ctx, BuildDebugPrompt(code))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Heading: "Debugging Report",
		Input:   code,
		Answer:  answer,
	}, nil
}

func (s *service) ExplainTopic(ctx context.Context, topic string) (Report, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Report{}, ErrEmptyInput("Please enter a topic to explain.")
	}
	answer, err := s.llm.Generate(ctx, BuildTopicPrompt(topic))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Heading: fmt.Sprintf("Explanation for '%s'", topic),
		Input:   topic,
		Answer:  answer,
	}, nil
}

func (s *service) ExplainConcept(ctx context.Context, concept string) (Report, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return Report{}, ErrEmptyInput("Please enter a data analysis concept.")
	}
	answer, err := s.llm.Generate(ctx, BuildConceptPrompt(concept))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Heading: fmt.Sprintf("Explanation for '%s'", concept),
		Input:   concept,
		Answer:  answer,
	}, nil
}
