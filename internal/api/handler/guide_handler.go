package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vaais251/GB-Guide/internal/api/metrics"
	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

// GuideHandler handles HTTP requests for guide profile operations.
type GuideHandler struct {
	service ports.GuideService
}

func NewGuideHandler(service ports.GuideService) *GuideHandler {
	return &GuideHandler{service: service}
}

// Create handles POST /api/guides. One profile per user; it starts as
// pending until an admin verifies it.
//
// @Summary      Create the current user's guide profile
// @Tags         guides
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGuideRequest  true  "Guide profile details"
// @Success      201   {object}  domain.GuideProfile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/guides [post]
func (h *GuideHandler) Create(c echo.Context) error {
	var req createGuideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.CreateProfile(c.Request().Context(), actor, ports.CreateGuideInput{
		Bio:       req.Bio,
		DailyRate: req.DailyRate,
		Languages: req.Languages,
		CNICImage: req.CNICImage,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("guide_profile").Inc()
	return c.JSON(http.StatusCreated, profile)
}

// List handles GET /api/guides — verified profiles only.
//
// @Summary      List verified guide profiles
// @Tags         guides
// @Produce      json
// @Success      200  {array}  domain.GuideProfile
// @Router       /api/guides [get]
func (h *GuideHandler) List(c echo.Context) error {
	profiles, err := h.service.ListVerifiedGuides(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// Me handles GET /api/guides/me — the caller's own profile, any status.
//
// @Summary      Get the current user's guide profile
// @Tags         guides
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.GuideProfile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/guides/me [get]
func (h *GuideHandler) Me(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.MyProfile(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// SetStatus handles PATCH /api/guides/:guide_id/status (admin only).
//
// @Summary      Update a guide profile's verification status
// @Tags         guides
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        guide_id  path      int               true  "Guide profile id"
// @Param        body      body      setStatusRequest  true  "New status"
// @Success      200       {object}  domain.GuideProfile
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/guides/{guide_id}/status [patch]
func (h *GuideHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c, "guide_id")
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.SetProfileStatus(c.Request().Context(), id, domain.VerificationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
