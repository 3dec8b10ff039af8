package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vaais251/GB-Guide/internal/api/metrics"
	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

// CarHandler handles HTTP requests for rental car operations.
type CarHandler struct {
	service ports.CarService
}

func NewCarHandler(service ports.CarService) *CarHandler {
	return &CarHandler{service: service}
}

// Create handles POST /api/cars. The car starts as pending until an admin
// verifies it.
//
// @Summary      List a new rental car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCarRequest  true  "Car details"
// @Success      201   {object}  domain.Car
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/cars [post]
func (h *CarHandler) Create(c echo.Context) error {
	var req createCarRequest
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

	withDriver := true
	if req.WithDriver != nil {
		withDriver = *req.WithDriver
	}

	car, err := h.service.CreateCar(c.Request().Context(), actor, ports.CreateCarInput{
		Make:               req.Make,
		Model:              req.Model,
		LicensePlate:       req.LicensePlate,
		WithDriver:         withDriver,
		DriverLicenseImage: req.DriverLicenseImage,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("car").Inc()
	return c.JSON(http.StatusCreated, car)
}

// List handles GET /api/cars — verified cars only.
//
// @Summary      List verified rental cars
// @Tags         cars
// @Produce      json
// @Success      200  {array}  domain.Car
// @Router       /api/cars [get]
func (h *CarHandler) List(c echo.Context) error {
	cars, err := h.service.ListAvailableCars(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// ListMine handles GET /api/cars/my — the caller's cars, any status.
//
// @Summary      List cars owned by the current user
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Car
// @Failure      401  {object}  map[string]string
// @Router       /api/cars/my [get]
func (h *CarHandler) ListMine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	cars, err := h.service.ListMyCars(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// SetStatus handles PATCH /api/cars/:car_id/status (admin only).
//
// @Summary      Update a car's verification status
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        car_id  path      int               true  "Car id"
// @Param        body    body      setStatusRequest  true  "New status"
// @Success      200     {object}  domain.Car
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/cars/{car_id}/status [patch]
func (h *CarHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c, "car_id")
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

	car, err := h.service.SetCarStatus(c.Request().Context(), id, domain.VerificationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}
