package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepo,
	}
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.User, error) {
	data, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return data, nil
}

// CreateUser implements user.UserService. Accounts are provisioned by the
// identity system; this entry point is kept only to fail loudly.
func (s *UserServiceImpl) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	return user.User{}, user.ErrCreateNotSupported
}
