package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/ports"
)

// GuideService implements guide profile use cases. A user has at most one
// profile; new profiles require admin verification before becoming public.
type GuideService struct {
	repo   ports.GuideRepository
	logger zerolog.Logger
}

func NewGuideService(repo ports.GuideRepository, logger zerolog.Logger) *GuideService {
	return &GuideService{repo: repo, logger: logger}
}

func (s *GuideService) CreateProfile(ctx context.Context, actor *domain.User, input ports.CreateGuideInput) (*domain.GuideProfile, error) {
	profile := &domain.GuideProfile{
		UserID:    actor.ID,
		Bio:       input.Bio,
		DailyRate: input.DailyRate,
		Languages: input.Languages,
		Status:    domain.StatusPending,
		CNICImage: input.CNICImage,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("guide_id", created.ID).Int64("user_id", actor.ID).Msg("guide profile created, pending verification")
	return created, nil
}

func (s *GuideService) ListVerifiedGuides(ctx context.Context) ([]domain.GuideProfile, error) {
	return s.repo.ListByStatus(ctx, domain.StatusVerified)
}

func (s *GuideService) MyProfile(ctx context.Context, userID int64) (*domain.GuideProfile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *GuideService) SetProfileStatus(ctx context.Context, id int64, status domain.VerificationStatus) (*domain.GuideProfile, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("guide_id", id).Str("status", string(status)).Msg("guide profile status updated")
	return s.repo.FindByID(ctx, id)
}
