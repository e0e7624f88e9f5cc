package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resume-scorer/internal/models"
)

type ScorerService interface {
	ScoreResume(ctx context.Context, resumeText string) (*models.ResumeScoreResponse, error)
}

type scorerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	schema        *gojsonschema.Schema
	maxAttempts   int
	temperature   float32
}

// resumeScoreSchema is the fixed shape every model answer must match. Only
// presence and types are checked: scores outside 1-10 and missing_aspects
// lists of any length still pass.
var resumeScoreSchema = map[string]interface{}{
	"type": "object",
	"required": []string{
		"summary",
		"skills_score",
		"experience_score",
		"overall_score",
		"feedback",
		"missing_aspects",
	},
	"properties": map[string]interface{}{
		"summary":          map[string]interface{}{"type": "string"},
		"skills_score":     map[string]interface{}{"type": "number"},
		"experience_score": map[string]interface{}{"type": "number"},
		"overall_score":    map[string]interface{}{"type": "number"},
		"feedback":         map[string]interface{}{"type": "string"},
		"missing_aspects": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
	},
}

func NewScorerService(
	geminiService GeminiService,
	maxAttempts int,
	temperature float32,
) (ScorerService, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(resumeScoreSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile response schema: %w", err)
	}

	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &scorerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		schema:        schema,
		maxAttempts:   maxAttempts,
		temperature:   temperature,
	}, nil
}

// ScoreResume implements ScorerService. The same prompt is sent on every
// attempt; an attempt whose output fails cleanup-then-validation is discarded
// and the next one starts immediately, with no delay and no prompt mutation.
func (s *scorerService) ScoreResume(ctx context.Context, resumeText string) (*models.ResumeScoreResponse, error) {
	prompt := s.promptBuilder.BuildResumeScorePrompt(resumeText)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		raw, err := s.geminiService.GenerateText(ctx, prompt, s.temperature)
		if err != nil {
			return nil, fmt.Errorf("model call failed: %w", err)
		}

		result, ok := s.parseAndValidate(cleanModelOutput(raw))
		if ok {
			return result, nil
		}

		log.Printf("⚠️ Attempt %d/%d produced output that failed schema validation\n", attempt, s.maxAttempts)
	}

	return nil, fmt.Errorf("%w: model failed to return valid JSON after %d attempts", ErrModelOutputInvalid, s.maxAttempts)
}

// parseAndValidate reports whether the cleaned text is schema-valid JSON.
// Failure is the expected common case here, so it is a bool, not an error.
func (s *scorerService) parseAndValidate(text string) (*models.ResumeScoreResponse, bool) {
	result, err := s.schema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil || !result.Valid() {
		return nil, false
	}

	var response models.ResumeScoreResponse
	if err := json.Unmarshal([]byte(text), &response); err != nil {
		return nil, false
	}

	return &response, true
}

// cleanModelOutput strips the markdown code fence the model sometimes wraps
// around its JSON, despite being told not to.
func cleanModelOutput(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.Trim(text, "`")
		text = strings.TrimSpace(text)
		text = strings.TrimPrefix(text, "json")
	}
	return strings.TrimSpace(text)
}
