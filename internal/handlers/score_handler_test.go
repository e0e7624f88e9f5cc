package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/models"
	"resume-scorer/internal/services"
)

// fakeScorer records what the handlers pass to the scoring loop.
type fakeScorer struct {
	result   *models.ResumeScoreResponse
	err      error
	calls    int
	lastText string
}

func (f *fakeScorer) ScoreResume(ctx context.Context, resumeText string) (*models.ResumeScoreResponse, error) {
	f.calls++
	f.lastText = resumeText
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testScoreResponse() *models.ResumeScoreResponse {
	return &models.ResumeScoreResponse{
		Summary:         "Backend engineer.",
		SkillsScore:     7,
		ExperienceScore: 6,
		OverallScore:    6.5,
		Feedback:        "Solid foundation, needs more depth.",
		MissingAspects:  []string{"education", "certifications"},
	}
}

func newScoreApp(scorer services.ScorerService) *fiber.App {
	app := fiber.New()
	app.Post("/score", NewScoreHandler(scorer).HandleScore)
	return app
}

func TestHandleScore_Success(t *testing.T) {
	scorer := &fakeScorer{result: testScoreResponse()}
	app := newScoreApp(scorer)

	req := httptest.NewRequest("POST", "/score", strings.NewReader(`{"resume_text": "my resume"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, scorer.calls)
	assert.Equal(t, "my resume", scorer.lastText)

	var got models.ResumeScoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *testScoreResponse(), got)
}

func TestHandleScore_InvalidPayload(t *testing.T) {
	scorer := &fakeScorer{result: testScoreResponse()}
	app := newScoreApp(scorer)

	req := httptest.NewRequest("POST", "/score", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, scorer.calls)
}

func TestHandleScore_ModelOutputInvalid(t *testing.T) {
	scorer := &fakeScorer{err: services.ErrModelOutputInvalid}
	app := newScoreApp(scorer)

	req := httptest.NewRequest("POST", "/score", strings.NewReader(`{"resume_text": "my resume"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "model output invalid")
}
