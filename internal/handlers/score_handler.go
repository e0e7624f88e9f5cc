package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-scorer/internal/models"
	"resume-scorer/internal/services"
)

type ScoreHandler struct {
	scorerService services.ScorerService
}

func NewScoreHandler(scorerService services.ScorerService) *ScoreHandler {
	return &ScoreHandler{
		scorerService: scorerService,
	}
}

// HandleScore handles POST /score
func (h *ScoreHandler) HandleScore(c *fiber.Ctx) error {
	var req models.ScoreRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	return respondWithScore(c, h.scorerService, req.ResumeText)
}

// respondWithScore runs the scoring loop and writes either the score object or
// the error body. Shared by the text and upload paths.
func respondWithScore(c *fiber.Ctx, scorer services.ScorerService, resumeText string) error {
	result, err := scorer.ScoreResume(c.Context(), resumeText)
	if err != nil {
		status := fiber.StatusInternalServerError
		if !errors.Is(err, services.ErrModelOutputInvalid) {
			// Transport failure talking to the model, not an exhausted retry loop
			return c.Status(status).JSON(fiber.Map{
				"error": "Failed to reach the scoring model",
			})
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
