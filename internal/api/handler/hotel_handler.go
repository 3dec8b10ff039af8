package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vaais251/GB-Guide/internal/api/metrics"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

// HotelHandler handles HTTP requests for hotel and room operations.
type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// Create handles POST /api/hotels.
//
// @Summary      Create a new hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHotelRequest  true  "Hotel details"
// @Success      201   {object}  domain.Hotel
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	var req createHotelRequest
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

	hotel, err := h.service.CreateHotel(c.Request().Context(), actor, ports.CreateHotelInput{
		Name:        req.Name,
		Location:    req.Location,
		City:        req.City,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("hotel").Inc()
	return c.JSON(http.StatusCreated, hotel)
}

// List handles GET /api/hotels.
//
// @Summary      List all hotels
// @Tags         hotels
// @Produce      json
// @Param        city  query     string  false  "Filter by city (substring, case-insensitive)"
// @Success      200   {array}   domain.Hotel
// @Router       /api/hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	hotels, err := h.service.ListHotels(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

// ListMine handles GET /api/hotels/my/hotels — the owner dashboard view,
// rooms included.
//
// @Summary      List hotels owned by the current user
// @Tags         hotels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Hotel
// @Failure      401  {object}  map[string]string
// @Router       /api/hotels/my/hotels [get]
func (h *HotelHandler) ListMine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	hotels, err := h.service.ListMyHotels(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

// Get handles GET /api/hotels/:hotel_id.
//
// @Summary      Get a hotel and its rooms
// @Tags         hotels
// @Produce      json
// @Param        hotel_id  path      int  true  "Hotel id"
// @Success      200       {object}  domain.Hotel
// @Failure      404       {object}  map[string]string
// @Router       /api/hotels/{hotel_id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	id, err := pathID(c, "hotel_id")
	if err != nil {
		return err
	}

	hotel, err := h.service.GetHotel(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotel)
}

// AddRoom handles POST /api/hotels/:hotel_id/rooms. Only the hotel's owner
// (or an admin) may add rooms; a missing hotel is 404 regardless of caller.
//
// @Summary      Add a room to a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotel_id  path      int                true  "Hotel id"
// @Param        body      body      createRoomRequest  true  "Room details"
// @Success      201       {object}  domain.Room
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/hotels/{hotel_id}/rooms [post]
func (h *HotelHandler) AddRoom(c echo.Context) error {
	id, err := pathID(c, "hotel_id")
	if err != nil {
		return err
	}

	var req createRoomRequest
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

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	room, err := h.service.AddRoom(c.Request().Context(), actor, ports.AddRoomInput{
		HotelID:       id,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		IsAvailable:   available,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("room").Inc()
	return c.JSON(http.StatusCreated, room)
}

// pathID parses a numeric path parameter, rejecting non-numeric values with 400.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
