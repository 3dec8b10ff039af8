package domain

import (
	"errors"
	"time"
)

var ErrHotelNotFound = errors.New("hotel not found")

// Hotel is a listing created by a hotel_owner (or admin). Ownership is set at
// creation and never transfers.
type Hotel struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Rooms       []Room    `json:"rooms,omitempty"`
}

// Room is a bookable room type within a hotel.
type Room struct {
	ID            int64   `json:"id"`
	HotelID       int64   `json:"hotel_id"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	IsAvailable   bool    `json:"is_available"`
}
