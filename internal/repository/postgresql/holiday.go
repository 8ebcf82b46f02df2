package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/holiday"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

const holidayColumns = `id, name, local_name, start_date, end_date, description, created_at, updated_at`

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.Name, &h.LocalName, &h.StartDate, &h.EndDate, &h.Description,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}
	return h, nil
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (name, local_name, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newHoliday.Name,
		newHoliday.LocalName,
		newHoliday.StartDate,
		newHoliday.EndDate,
		newHoliday.Description,
	).Scan(&newHoliday.ID, &newHoliday.CreatedAt, &newHoliday.UpdatedAt)

	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return newHoliday, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id int) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Holiday{}, fmt.Errorf("holiday not found: %w", err)
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by ID: %w", err)
	}

	return h, nil
}

// ListByRange implements holiday.HolidayRepository. A holiday overlaps the
// window unless it ends before the window starts or starts after it ends.
func (r *holidayRepository) ListByRange(ctx context.Context, startDate, endDate time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE end_date >= $1 AND start_date <= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
