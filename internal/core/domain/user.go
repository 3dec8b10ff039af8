package domain

import (
	"errors"
	"time"
)

// Roles form a closed set; a user's role is fixed at registration.
const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleHotelOwner = "hotel_owner"
	RoleCarRental  = "car_rental"
	RoleGuide      = "guide"
)

var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrUserExists = errors.New("a user with this email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrUnauthenticated = errors.New("could not validate credentials")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAdmin, RoleHotelOwner, RoleCarRental, RoleGuide:
		return true
	}
	return false
}

// User models a registered actor on the platform. The role determines which
// provider relationships (hotels, cars, guide profile) are meaningful.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	City         string    `json:"city,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanManage reports whether the user may mutate a resource owned by ownerID.
// Admins bypass the ownership match.
func (u *User) CanManage(ownerID int64) bool {
	return u.Role == RoleAdmin || u.ID == ownerID
}
