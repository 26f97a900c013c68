package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleSeeker = "SEEKER"
	RoleAdmin  = "ADMIN"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

type AccessClaims struct {
	SeekerID  uuid.UUID
	Role      string
	ExpiresAt time.Time
}
