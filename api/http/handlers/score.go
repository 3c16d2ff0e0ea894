package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/codevhq/scoring/api/http/presenter"
	"github.com/codevhq/scoring/pkg/profile"
	"github.com/codevhq/scoring/pkg/scoring"
)

// ScoreHandler exposes the profile-completeness scoring endpoint.
type ScoreHandler struct {
	uc scoring.UseCase
}

func NewScoreHandler(uc scoring.UseCase) *ScoreHandler { return &ScoreHandler{uc: uc} }

// GetPoints recomputes the profile's completeness score, refreshes the points
// ledger and returns the full breakdown.
// @Summary Profile completeness score
// @Description Recomputes all point categories for the profile, replaces the stored ledger rows and returns totals, breakdown and section summary.
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile id (UUID)"
// @Security BearerAuth
// @Success 200 {object} scoring.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/points [get]
func (h *ScoreHandler) GetPoints(c *fiber.Ctx) error {
	actorIDStr, _ := c.Locals("userId").(string)
	actorID, err := uuid.Parse(actorIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unable to resolve caller identity")
	}
	// Validate before any datastore work happens.
	codevID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "profile id must be a valid UUID")
	}

	result, err := h.uc.Score(c.Context(), actorID, codevID)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrForbidden):
			return presenter.Error(c, http.StatusForbidden, "not allowed to access this profile")
		case errors.Is(err, profile.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		default:
			return presenter.ErrorDetails(c, http.StatusInternalServerError, "failed to compute profile score", err.Error())
		}
	}
	return presenter.JSON(c, http.StatusOK, result)
}
