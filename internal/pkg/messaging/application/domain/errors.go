package messaging

import "errors"

// Domain-level errors for messaging behaviors
var (
	ErrConversationNotFound = errors.New("messaging: conversation not found")
	ErrMessageNotFound      = errors.New("messaging: message not found")
	ErrNoOffer              = errors.New("messaging: message carries no offer")

	// ErrNotAuthorized is deliberately the only authorization error. Every
	// failed guard check maps to it so a response never reveals which
	// membership or role check tripped.
	ErrNotAuthorized = errors.New("messaging: not authorized")

	ErrInvalidParticipant = errors.New("messaging: sender and recipient must be distinct conversation participants")
	ErrEmptyContent       = errors.New("messaging: message content must not be empty")
	ErrInvalidDuration    = errors.New("messaging: offer duration must be a positive number of days")
	ErrInvalidOffer       = errors.New("messaging: offer company and product are required")
	ErrIncompleteOffer    = errors.New("messaging: offer has no associated post")

	// ErrConflict signals that a concurrent writer won every retry of an
	// optimistic update. Safe for the caller to retry.
	ErrConflict = errors.New("messaging: conversation was modified concurrently")
)
