package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/codevhq/scoring/api/http/presenter"
	"github.com/codevhq/scoring/pkg/profile"
)

// ProfileHandler exposes the profile-edit flows that feed the scoring engine.
type ProfileHandler struct {
	uc profile.UseCase
}

func NewProfileHandler(uc profile.UseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

func actor(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals("userId").(string)
	return uuid.Parse(idStr)
}

// Get returns a profile snapshot with its child collections.
// @Summary Get profile
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile id (UUID)"
// @Security BearerAuth
// @Success 200 {object} profile.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id} [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	actorID, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unable to resolve caller identity")
	}
	codevID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "profile id must be a valid UUID")
	}
	snap, err := h.uc.Get(c.Context(), actorID, codevID)
	if err != nil {
		return profileError(c, err, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, snap)
}

type saveProfileRequest struct {
	ImageURL          *string  `json:"image_url"`
	About             *string  `json:"about"`
	Phone             *string  `json:"phone"`
	Address           *string  `json:"address"`
	Facebook          *string  `json:"facebook"`
	Github            *string  `json:"github"`
	Linkedin          *string  `json:"linkedin"`
	PortfolioWebsite  *string  `json:"portfolio_website"`
	TechStacks        []string `json:"tech_stacks"`
	Positions         []string `json:"positions"`
	YearsOfExperience *int     `json:"years_of_experience"`
}

// Save upserts the profile's scalar attributes and lists.
// @Summary Save profile
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   id path string true "profile id (UUID)"
// @Param   input body saveProfileRequest true "profile attributes"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /profiles/{id} [put]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	actorID, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unable to resolve caller identity")
	}
	codevID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "profile id must be a valid UUID")
	}
	var req saveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p := profile.Profile{
		CodevID:           codevID,
		ImageURL:          req.ImageURL,
		About:             req.About,
		Phone:             req.Phone,
		Address:           req.Address,
		Facebook:          req.Facebook,
		Github:            req.Github,
		Linkedin:          req.Linkedin,
		PortfolioWebsite:  req.PortfolioWebsite,
		TechStacks:        req.TechStacks,
		Positions:         req.Positions,
		YearsOfExperience: req.YearsOfExperience,
	}
	saved, err := h.uc.Save(c.Context(), actorID, p)
	if err != nil {
		return profileError(c, err, "failed to save profile")
	}
	return presenter.JSON(c, http.StatusOK, saved)
}

type workExperienceRequest struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
}

// AddWorkExperience appends one work-experience entry.
// @Summary Add work experience
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   id path string true "profile id (UUID)"
// @Param   input body workExperienceRequest true "entry"
// @Security BearerAuth
// @Success 201 {object} profile.WorkExperience
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/work-experiences [post]
func (h *ProfileHandler) AddWorkExperience(c *fiber.Ctx) error {
	actorID, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unable to resolve caller identity")
	}
	codevID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "profile id must be a valid UUID")
	}
	var req workExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Company == "" || req.Role == "" {
		return presenter.Error(c, http.StatusBadRequest, "company and role are required")
	}
	entry, err := h.uc.AddWorkExperience(c.Context(), actorID, profile.WorkExperience{
		CodevID:     codevID,
		Company:     req.Company,
		Role:        req.Role,
		Description: req.Description,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
	})
	if err != nil {
		return profileError(c, err, "failed to add work experience")
	}
	return presenter.JSON(c, http.StatusCreated, entry)
}

// DeleteWorkExperience removes one entry by id.
// @Summary Delete work experience
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile id (UUID)"
// @Param   entryId path string true "entry id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/work-experiences/{entryId} [delete]
func (h *ProfileHandler) DeleteWorkExperience(c *fiber.Ctx) error {
	actorID, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unable to resolve caller identity")
	}
	codevID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "profile id must be a valid UUID")
	}
	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "entry id must be a valid UUID")
	}
	if err := h.uc.RemoveWorkExperience(c.Context(), actorID, codevID, entryID); err != nil {
		return profileError(c, err, "failed to delete work experience")
	}
	return c.SendStatus(http.StatusNoContent)
}

type educationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
}

// AddEducation appends one education entry.
// @Summary Add education
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   id path string true "profile id (UUID)"
// @Param   input body educationRequest true "entry"
// @Security BearerAuth
// @Success 201 {object} profile.Education
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/educations [post]
func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	actorID, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unable to resolve caller identity")
	}
	codevID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "profile id must be a valid UUID")
	}
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Institution == "" {
		return presenter.Error(c, http.StatusBadRequest, "institution is required")
	}
	entry, err := h.uc.AddEducation(c.Context(), actorID, profile.Education{
		CodevID:     codevID,
		Institution: req.Institution,
		Degree:      req.Degree,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
	})
	if err != nil {
		return profileError(c, err, "failed to add education")
	}
	return presenter.JSON(c, http.StatusCreated, entry)
}

// DeleteEducation removes one entry by id.
// @Summary Delete education
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile id (UUID)"
// @Param   entryId path string true "entry id (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/educations/{entryId} [delete]
func (h *ProfileHandler) DeleteEducation(c *fiber.Ctx) error {
	actorID, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unable to resolve caller identity")
	}
	codevID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "profile id must be a valid UUID")
	}
	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "entry id must be a valid UUID")
	}
	if err := h.uc.RemoveEducation(c.Context(), actorID, codevID, entryID); err != nil {
		return profileError(c, err, "failed to delete education")
	}
	return c.SendStatus(http.StatusNoContent)
}

func profileError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, profile.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "not allowed to access this profile")
	case errors.Is(err, profile.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	default:
		return presenter.ErrorDetails(c, http.StatusInternalServerError, fallback, err.Error())
	}
}
