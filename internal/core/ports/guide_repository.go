package ports

import (
	"context"

	"github.com/vaais251/GB-Guide/internal/core/domain"
)

// GuideRepository defines persistence operations for guide profiles.
type GuideRepository interface {
	// Insert persists a new profile, assigning its numeric id.
	// Returns domain.ErrGuideProfileExists when the user already has one.
	Insert(ctx context.Context, profile *domain.GuideProfile) (*domain.GuideProfile, error)
	FindByID(ctx context.Context, id int64) (*domain.GuideProfile, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.GuideProfile, error)
	ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.GuideProfile, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VerificationStatus) error
}
