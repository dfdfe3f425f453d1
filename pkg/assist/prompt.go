package assist

import "fmt"

// Prompt templates for the three assistant forms. Inputs are embedded
// verbatim; the fence delimiter inside user code is not escaped.

func BuildDebugPrompt(code string) string {
	return fmt.Sprintf("Debug the following code. Explain any errors, suggest fixes, and provide a corrected version if necessary:\n\n```\n%s\n```", code)
}

func BuildTopicPrompt(topic string) string {
	return fmt.Sprintf("Explain the following topic in simple terms, using analogies and a clear, relatable example:\n\nTopic: %s", topic)
}

func BuildConceptPrompt(concept string) string {
	return fmt.Sprintf("Explain the data analysis concept '%s' in detail, including its purpose, how it's used, and a simple example if applicable.", concept)
}
