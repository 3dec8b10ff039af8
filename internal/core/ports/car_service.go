package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// CreateCarInput carries the fields for a new rental car listing.
type CreateCarInput struct {
	Make               string
	Model              string
	LicensePlate       string
	WithDriver         bool
	DriverLicenseImage string
}

// CarService defines use-case operations for rental car listings.
type CarService interface {
	// CreateCar lists a new car for the acting user; it starts as pending
	// until an admin verifies it.
	CreateCar(ctx context.Context, actor *domain.User, input CreateCarInput) (*domain.Car, error)
	// ListAvailableCars returns verified cars only (the public catalogue).
	ListAvailableCars(ctx context.Context) ([]domain.Car, error)
	ListMyCars(ctx context.Context, ownerID int64) ([]domain.Car, error)
	SetCarStatus(ctx context.Context, id int64, status domain.VerificationStatus) (*domain.Car, error)
}
