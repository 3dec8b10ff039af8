package domain

import (
	"errors"
	"time"
)

// VerificationStatus is the admin-approval state of provider listings
// (cars, guide profiles). New listings start as pending and only become
// publicly visible once verified.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusRejected VerificationStatus = "rejected"
)

// Valid reports whether s is one of the known verification states.
func (s VerificationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

var ErrCarNotFound = errors.New("car not found")
var ErrDuplicatePlate = errors.New("a car with this license plate already exists")

// Car is a rental vehicle listed by a car_rental user.
type Car struct {
	ID                 int64              `json:"id"`
	OwnerID            int64              `json:"owner_id"`
	Make               string             `json:"make"`
	Model              string             `json:"model"`
	LicensePlate       string             `json:"license_plate"`
	WithDriver         bool               `json:"with_driver"`
	Status             VerificationStatus `json:"status"`
	DriverLicenseImage string             `json:"driver_license_image,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}
