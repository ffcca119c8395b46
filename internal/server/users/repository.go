package users

import (
	"context"
)

type Repository interface {
	// Create inserts the user and returns it. A duplicate email fails with
	// common.ErrorEmailTaken (uniqueness is enforced by the store).
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail looks a user up by normalized email. Returns
	// common.ErrorNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
