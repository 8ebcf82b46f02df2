package user

import "context"

// UserService defines business logic for user lookups
type UserService interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (User, error)

	// CreateUser always fails with ErrCreateNotSupported
	CreateUser(ctx context.Context, u User) (User, error)
}
