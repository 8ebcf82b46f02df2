package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/token"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/user"
)

type TokenServiceImpl struct {
	token.TokenRepository
	user.UserRepository

	now func() time.Time
}

func NewTokenService(tokenRepo token.TokenRepository, userRepo user.UserRepository) token.TokenService {
	return &TokenServiceImpl{
		TokenRepository: tokenRepo,
		UserRepository:  userRepo,
		now:             time.Now,
	}
}

// IssueToken implements token.TokenService.
func (s *TokenServiceImpl) IssueToken(ctx context.Context, userID, purpose string, ttl time.Duration) (token.ConfirmationToken, error) {
	exists, err := s.UserRepository.Exists(ctx, userID)
	if err != nil {
		return token.ConfirmationToken{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return token.ConfirmationToken{}, user.ErrUserNotFound
	}

	data := token.ConfirmationToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		Purpose:   purpose,
		ExpiresAt: s.now().UTC().Add(ttl),
	}

	created, err := s.TokenRepository.Create(ctx, data)
	if err != nil {
		return token.ConfirmationToken{}, fmt.Errorf("failed to create confirmation token: %w", err)
	}
	return created, nil
}

// RedeemToken implements token.TokenService.
func (s *TokenServiceImpl) RedeemToken(ctx context.Context, value string) (token.ConfirmationToken, error) {
	data, err := s.TokenRepository.GetByToken(ctx, value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return token.ConfirmationToken{}, token.ErrTokenNotFound
		}
		return token.ConfirmationToken{}, fmt.Errorf("failed to get confirmation token: %w", err)
	}

	if data.IsUsed() {
		return token.ConfirmationToken{}, token.ErrTokenUsed
	}
	if data.IsExpired(s.now().UTC()) {
		return token.ConfirmationToken{}, token.ErrTokenExpired
	}

	if err := s.TokenRepository.MarkUsed(ctx, data.ID); err != nil {
		return token.ConfirmationToken{}, fmt.Errorf("failed to mark token used: %w", err)
	}
	usedAt := s.now().UTC()
	data.UsedAt = &usedAt
	return data, nil
}

// DeleteToken implements token.TokenService. Tokens are audit records and
// expire on their own; direct deletion is blocked.
func (s *TokenServiceImpl) DeleteToken(ctx context.Context, id int) error {
	return token.ErrDeleteNotSupported
}
