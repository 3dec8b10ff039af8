package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// CreateGuideInput carries the fields for a new guide profile.
type CreateGuideInput struct {
	Bio       string
	DailyRate float64
	Languages []string
	CNICImage string
}

// GuideService defines use-case operations for guide profiles.
type GuideService interface {
	// CreateProfile creates the acting user's guide profile (one per user);
	// it starts as pending until an admin verifies it.
	CreateProfile(ctx context.Context, actor *domain.User, input CreateGuideInput) (*domain.GuideProfile, error)
	// ListVerifiedGuides returns verified profiles only (the public catalogue).
	ListVerifiedGuides(ctx context.Context) ([]domain.GuideProfile, error)
	MyProfile(ctx context.Context, userID int64) (*domain.GuideProfile, error)
	SetProfileStatus(ctx context.Context, id int64, status domain.VerificationStatus) (*domain.GuideProfile, error)
}
