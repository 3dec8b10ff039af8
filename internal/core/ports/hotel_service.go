package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// CreateHotelInput carries the fields for a new hotel listing.
// The owner is always the acting user; it is not client-supplied.
type CreateHotelInput struct {
	Name        string
	Location    string
	City        string
	Description string
	Images      []string
}

// AddRoomInput carries the fields for a new room within a hotel.
type AddRoomInput struct {
	HotelID       int64
	RoomType      string
	PricePerNight float64
	Capacity      int
	IsAvailable   bool
}

// HotelService defines use-case operations for hotel listings.
// Operations taking an actor enforce ownership: only the hotel's owner or an
// admin may mutate it, and a missing hotel is reported as not-found before any
// ownership decision.
type HotelService interface {
	CreateHotel(ctx context.Context, actor *domain.User, input CreateHotelInput) (*domain.Hotel, error)
	ListHotels(ctx context.Context, city string) ([]domain.Hotel, error)
	ListMyHotels(ctx context.Context, ownerID int64) ([]domain.Hotel, error)
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
	AddRoom(ctx context.Context, actor *domain.User, input AddRoomInput) (*domain.Room, error)
}
