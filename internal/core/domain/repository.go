package domain

import (
	"context"
)

type UserRepository interface {
	// Create persists a new account. Duplicate emails fail with ErrEmailAlreadyExists.
	Create(ctx context.Context, user *User) error

	GetByEmail(ctx context.Context, email string) (*User, error)

	GetByID(ctx context.Context, id string) (*User, error)
}

type ProgressRepository interface {
	// Load returns the stored progress for a user.
	// A user with nothing stored yet gets an empty UserProgress, not an error.
	Load(ctx context.Context, userID string) (UserProgress, error)

	// Save replaces the stored progress for a user (last write wins).
	Save(ctx context.Context, userID string, progress UserProgress) error
}
