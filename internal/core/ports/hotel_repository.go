package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// HotelRepository defines persistence operations for hotels and their rooms.
type HotelRepository interface {
	// Insert persists a new hotel, assigning its numeric id.
	Insert(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	// List returns hotels newest-first, optionally filtered by a
	// case-insensitive city substring match. Rooms are not loaded.
	List(ctx context.Context, city string) ([]domain.Hotel, error)
	// ListByOwner returns all hotels owned by ownerID, rooms included.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error)
	// FindByID returns a hotel with its rooms, or domain.ErrHotelNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Hotel, error)
	// AddRoom appends a room to an existing hotel.
	AddRoom(ctx context.Context, hotelID int64, room *domain.Room) error
}
