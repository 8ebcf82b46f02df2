package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/absence"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

type absenceTypeRepository struct {
	db *database.DB
}

func NewAbsenceTypeRepository(db *database.DB) absence.AbsenceTypeRepository {
	return &absenceTypeRepository{db: db}
}

// GetByID implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepository) GetByID(ctx context.Context, id int) (absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	var t absence.AbsenceType
	err := q.QueryRow(ctx, `SELECT id, name, description FROM absence_types WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return absence.AbsenceType{}, fmt.Errorf("absence type not found: %w", err)
		}
		return absence.AbsenceType{}, fmt.Errorf("failed to get absence type by ID: %w", err)
	}

	return t, nil
}

// List implements absence.AbsenceTypeRepository.
func (r *absenceTypeRepository) List(ctx context.Context) ([]absence.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description FROM absence_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query absence types: %w", err)
	}
	defer rows.Close()

	var types []absence.AbsenceType
	for rows.Next() {
		var t absence.AbsenceType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan absence type: %w", err)
		}
		types = append(types, t)
	}

	return types, nil
}
