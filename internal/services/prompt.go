package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeScorePrompt creates the scoring prompt. The same prompt is sent on
// every attempt; failed attempts get no feedback about what went wrong.
func (pb *PromptBuilder) BuildResumeScorePrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert HR and career coach.
Analyze the following resume and:
1. Summarize it in 1-2 sentences under the key "summary".
2. Give a score from 1-10 for Skills.
3. Give a score from 1-10 for Experience.
4. Give an overall score from 1-10.
5. Provide constructive feedback in 2-3 sentences.
6. List 2-4 key aspects missing from the resume in "missing_aspects".

Resume:
%s

Return ONLY valid JSON in this format:
{
  "summary": "string",
  "skills_score": number,
  "experience_score": number,
  "overall_score": number,
  "feedback": "string",
  "missing_aspects": ["string", "string", "string"]
}
No markdown. No code blocks. No extra text.`, resumeText)
}
