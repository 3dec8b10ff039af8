package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// CarRepository defines persistence operations for rental cars.
type CarRepository interface {
	// Insert persists a new car, assigning its numeric id.
	// Returns domain.ErrDuplicatePlate when the license plate is taken.
	Insert(ctx context.Context, car *domain.Car) (*domain.Car, error)
	ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.Car, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Car, error)
	FindByID(ctx context.Context, id int64) (*domain.Car, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VerificationStatus) error
}
