package assist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompts_ContainInputVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		build func(string) string
		input string
	}{
		{"debug", BuildDebugPrompt, "def f(): return 1/0"},
		{"debug multiline", BuildDebugPrompt, "x = 1\ny = 0\nprint(x / y)"},
		{"debug with fence inside", BuildDebugPrompt, "print('```')"},
		{"topic", BuildTopicPrompt, "Quantum Entanglement"},
		{"concept", BuildConceptPrompt, "P-value in Hypothesis Testing"},
		{"concept with quote", BuildConceptPrompt, "Student's t-test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build(tt.input)
			assert.Contains(t, got, tt.input, "input must survive untruncated and unescaped")
		})
	}
}

func TestBuildDebugPrompt_FencesCode(t *testing.T) {
	got := BuildDebugPrompt("def f(): return 1/0")
	assert.True(t, strings.Contains(got, "```\ndef f(): return 1/0\n```"))
	assert.True(t, strings.HasPrefix(got, "Debug the following code."))
}

func TestBuildTopicPrompt_NamesTopic(t *testing.T) {
	got := BuildTopicPrompt("Entropy")
	assert.Contains(t, got, "Topic: Entropy")
}

func TestBuildConceptPrompt_QuotesConcept(t *testing.T) {
	got := BuildConceptPrompt("ANOVA")
	assert.Contains(t, got, "'ANOVA'")
}
