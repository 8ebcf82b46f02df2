package user

import "context"

// UserRepository defines read-only data access for users.
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// Exists reports whether a user with the ID exists
	Exists(ctx context.Context, id string) (bool, error)

	// ExistsAdmin reports whether the ID belongs to an admin user
	ExistsAdmin(ctx context.Context, id string) (bool, error)
}
