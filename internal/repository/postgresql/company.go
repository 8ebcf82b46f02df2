package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/company"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id int) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	var c company.Company
	err := q.QueryRow(ctx, `SELECT id, name, address, created_at, updated_at FROM companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, fmt.Errorf("company not found: %w", err)
		}
		return company.Company{}, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return c, nil
}

// Exists implements company.CompanyRepository.
func (r *companyRepository) Exists(ctx context.Context, id int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check company existence: %w", err)
	}

	return exists, nil
}
