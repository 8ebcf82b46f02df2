package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/absence"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

const absenceColumns = `
	a.id, a.user_id, a.absence_type_id,
	a.start_date, a.start_hour, a.start_minute,
	a.end_date, a.end_hour, a.end_minute,
	a.is_full_date, a.reason,
	a.status_of_type, a.status_of_dates, a.is_fully_confirmed,
	a.created_at, a.updated_at,
	u.name AS user_name,
	t.name AS type_name`

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var abs absence.Absence
	err := row.Scan(
		&abs.ID, &abs.UserID, &abs.AbsenceTypeID,
		&abs.StartDate, &abs.StartHour, &abs.StartMinute,
		&abs.EndDate, &abs.EndHour, &abs.EndMinute,
		&abs.IsFullDate, &abs.Reason,
		&abs.StatusOfType, &abs.StatusOfDates, &abs.IsFullyConfirmed,
		&abs.CreatedAt, &abs.UpdatedAt,
		&abs.UserName, &abs.TypeName,
	)
	if err != nil {
		return absence.Absence{}, err
	}
	return abs, nil
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepository) Create(ctx context.Context, newAbsence absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (
			user_id, absence_type_id,
			start_date, start_hour, start_minute,
			end_date, end_hour, end_minute,
			is_full_date, reason,
			status_of_type, status_of_dates, is_fully_confirmed
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAbsence.UserID,
		newAbsence.AbsenceTypeID,
		newAbsence.StartDate,
		newAbsence.StartHour,
		newAbsence.StartMinute,
		newAbsence.EndDate,
		newAbsence.EndHour,
		newAbsence.EndMinute,
		newAbsence.IsFullDate,
		newAbsence.Reason,
		newAbsence.StatusOfType,
		newAbsence.StatusOfDates,
		newAbsence.IsFullyConfirmed,
	).Scan(&newAbsence.ID, &newAbsence.CreatedAt, &newAbsence.UpdatedAt)

	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return newAbsence, nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepository) GetByID(ctx context.Context, id int) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN absence_types t ON t.id = a.absence_type_id
		WHERE a.id = $1
	`

	abs, err := scanAbsence(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return absence.Absence{}, fmt.Errorf("absence not found: %w", err)
		}
		return absence.Absence{}, fmt.Errorf("failed to get absence by ID: %w", err)
	}

	return abs, nil
}

// Update implements absence.AbsenceRepository.
func (r *absenceRepository) Update(ctx context.Context, abs absence.Absence) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences SET
			user_id = $2, absence_type_id = $3,
			start_date = $4, start_hour = $5, start_minute = $6,
			end_date = $7, end_hour = $8, end_minute = $9,
			is_full_date = $10, reason = $11,
			status_of_type = $12, status_of_dates = $13, is_fully_confirmed = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		abs.ID,
		abs.UserID,
		abs.AbsenceTypeID,
		abs.StartDate,
		abs.StartHour,
		abs.StartMinute,
		abs.EndDate,
		abs.EndHour,
		abs.EndMinute,
		abs.IsFullDate,
		abs.Reason,
		abs.StatusOfType,
		abs.StatusOfDates,
		abs.IsFullyConfirmed,
	)
	if err != nil {
		return fmt.Errorf("failed to update absence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete implements absence.AbsenceRepository.
func (r *absenceRepository) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// List implements absence.AbsenceRepository.
func (r *absenceRepository) List(ctx context.Context, filter absence.AbsenceFilter) ([]absence.Absence, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.AbsenceTypeID != nil {
		baseWhere += fmt.Sprintf(" AND a.absence_type_id = $%d", argIdx)
		args = append(args, *filter.AbsenceTypeID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.start_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.end_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.FullyConfirmed != nil {
		baseWhere += fmt.Sprintf(" AND a.is_fully_confirmed = $%d", argIdx)
		args = append(args, *filter.FullyConfirmed)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM absences a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count absences: %w", err)
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM absences a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN absence_types t ON t.id = a.absence_type_id
		WHERE %s
		ORDER BY a.start_date DESC, a.start_hour DESC, a.start_minute DESC
		LIMIT $%d OFFSET $%d
	`, absenceColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		abs, err := scanAbsence(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, abs)
	}

	return absences, total, nil
}
