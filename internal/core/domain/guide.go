package domain

import (
	"errors"
	"time"
)

var ErrGuideNotFound = errors.New("guide profile not found")
var ErrGuideProfileExists = errors.New("a guide profile already exists for this user")

// GuideProfile is the extended provider profile of a guide user.
// One-to-one with User, enforced by a unique index on user_id.
type GuideProfile struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Bio       string             `json:"bio,omitempty"`
	DailyRate float64            `json:"daily_rate"`
	Languages []string           `json:"languages,omitempty"`
	Status    VerificationStatus `json:"status"`
	CNICImage string             `json:"cnic_image,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
