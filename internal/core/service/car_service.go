package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

// CarService implements rental car listing use cases. New cars require admin
// verification before appearing in the public catalogue.
type CarService struct {
	repo   ports.CarRepository
	logger zerolog.Logger
}

func NewCarService(repo ports.CarRepository, logger zerolog.Logger) *CarService {
	return &CarService{repo: repo, logger: logger}
}

func (s *CarService) CreateCar(ctx context.Context, actor *domain.User, input ports.CreateCarInput) (*domain.Car, error) {
	car := &domain.Car{
		OwnerID:            actor.ID,
		Make:               input.Make,
		Model:              input.Model,
		LicensePlate:       input.LicensePlate,
		WithDriver:         input.WithDriver,
		Status:             domain.StatusPending,
		DriverLicenseImage: input.DriverLicenseImage,
		CreatedAt:          time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, car)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("car_id", created.ID).Int64("owner_id", actor.ID).Msg("car listed, pending verification")
	return created, nil
}

func (s *CarService) ListAvailableCars(ctx context.Context) ([]domain.Car, error) {
	return s.repo.ListByStatus(ctx, domain.StatusVerified)
}

func (s *CarService) ListMyCars(ctx context.Context, ownerID int64) ([]domain.Car, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *CarService) SetCarStatus(ctx context.Context, id int64, status domain.VerificationStatus) (*domain.Car, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("car_id", id).Str("status", string(status)).Msg("car status updated")
	return s.repo.FindByID(ctx, id)
}
