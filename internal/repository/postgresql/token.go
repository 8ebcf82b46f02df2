package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/token"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

type tokenRepository struct {
	db *database.DB
}

func NewTokenRepository(db *database.DB) token.TokenRepository {
	return &tokenRepository{db: db}
}

// Create implements token.TokenRepository.
func (r *tokenRepository) Create(ctx context.Context, newToken token.ConfirmationToken) (token.ConfirmationToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO confirmation_tokens (token, user_id, purpose, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		newToken.Token,
		newToken.UserID,
		newToken.Purpose,
		newToken.ExpiresAt,
	).Scan(&newToken.ID, &newToken.CreatedAt)

	if err != nil {
		return token.ConfirmationToken{}, fmt.Errorf("failed to create confirmation token: %w", err)
	}

	return newToken, nil
}

// GetByToken implements token.TokenRepository.
func (r *tokenRepository) GetByToken(ctx context.Context, value string) (token.ConfirmationToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, token, user_id, purpose, expires_at, used_at, created_at
		FROM confirmation_tokens
		WHERE token = $1
	`

	var t token.ConfirmationToken
	err := q.QueryRow(ctx, query, value).Scan(
		&t.ID, &t.Token, &t.UserID, &t.Purpose, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return token.ConfirmationToken{}, fmt.Errorf("confirmation token not found: %w", err)
		}
		return token.ConfirmationToken{}, fmt.Errorf("failed to get confirmation token: %w", err)
	}

	return t, nil
}

// MarkUsed implements token.TokenRepository.
func (r *tokenRepository) MarkUsed(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE confirmation_tokens SET used_at = NOW() WHERE id = $1 AND used_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to mark token used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
