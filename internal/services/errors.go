package services

import (
	"errors"

	"farmconnect/internal/repositories"
)

var (
	// ErrNotFound is returned for records that do not exist or belong to
	// another user.
	ErrNotFound = repositories.ErrNotFound
	// ErrEmailTaken is returned when signing up or changing to an email
	// that another account already uses.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for tokens that fail parsing, signature
	// or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenRevoked is returned for tokens invalidated by sign-out.
	ErrTokenRevoked = errors.New("token has been revoked")
	// ErrInvalidQuantity is returned for negative produce or order quantities.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// EventPublisher sends domain events to the message broker.
type EventPublisher interface {
	Publish(eventType, userID string, payload interface{}) error
}
