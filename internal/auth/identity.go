package auth

import "github.com/google/uuid"

// Identity is the authenticated user carried by a session token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}
