package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/card"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

const cardColumns = `
	c.id, c.number, c.user_id, c.company_id, c.type,
	c.created_at, c.updated_at, c.deleted_at, c.deleted_by_id,
	u.name AS user_name`

type cardRepository struct {
	db *database.DB
}

func NewCardRepository(db *database.DB) card.CardRepository {
	return &cardRepository{db: db}
}

func scanCard(row pgx.Row) (card.Card, error) {
	var c card.Card
	err := row.Scan(
		&c.ID, &c.Number, &c.UserID, &c.CompanyID, &c.Type,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt, &c.DeletedByID,
		&c.UserName,
	)
	if err != nil {
		return card.Card{}, err
	}
	return c, nil
}

// Create implements card.CardRepository.
func (r *cardRepository) Create(ctx context.Context, newCard card.Card) (card.Card, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cards (number, user_id, company_id, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newCard.Number,
		newCard.UserID,
		newCard.CompanyID,
		newCard.Type,
	).Scan(&newCard.ID, &newCard.CreatedAt, &newCard.UpdatedAt)

	if err != nil {
		return card.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	return newCard, nil
}

// GetByID implements card.CardRepository.
func (r *cardRepository) GetByID(ctx context.Context, id int) (card.Card, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	c, err := scanCard(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return card.Card{}, fmt.Errorf("card not found: %w", err)
		}
		return card.Card{}, fmt.Errorf("failed to get card by ID: %w", err)
	}

	return c, nil
}

// GetByNumber implements card.CardRepository. Retired cards are skipped so a
// reissued number resolves to the active card.
func (r *cardRepository) GetByNumber(ctx context.Context, number string) (card.Card, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.number = $1 AND c.deleted_at IS NULL
	`

	c, err := scanCard(q.QueryRow(ctx, query, number))
	if err != nil {
		if err == pgx.ErrNoRows {
			return card.Card{}, fmt.Errorf("card not found: %w", err)
		}
		return card.Card{}, fmt.Errorf("failed to get card by number: %w", err)
	}

	return c, nil
}

// List implements card.CardRepository.
func (r *cardRepository) List(ctx context.Context, filter card.CardFilter) ([]card.Card, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if !filter.IncludeDeleted {
		baseWhere += " AND c.deleted_at IS NULL"
	}

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND c.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.CompanyID != nil {
		baseWhere += fmt.Sprintf(" AND c.company_id = $%d", argIdx)
		args = append(args, *filter.CompanyID)
		argIdx++
	}

	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND c.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM cards c WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cards: %w", err)
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM cards c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE %s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, cardColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}

	return cards, total, nil
}

// SoftDelete implements card.CardRepository.
func (r *cardRepository) SoftDelete(ctx context.Context, c card.Card) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cards SET
			deleted_at = $2, deleted_by_id = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, c.ID, c.DeletedAt, c.DeletedByID)
	if err != nil {
		return fmt.Errorf("failed to soft delete card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
