package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeScorePrompt(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildResumeScorePrompt("John Doe, Go developer since 2015")

	assert.Contains(t, prompt, "John Doe, Go developer since 2015")
	assert.Contains(t, prompt, `"missing_aspects"`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "No markdown. No code blocks. No extra text.")

	// Same input, same prompt: retries never mutate it
	assert.Equal(t, prompt, pb.BuildResumeScorePrompt("John Doe, Go developer since 2015"))
}
