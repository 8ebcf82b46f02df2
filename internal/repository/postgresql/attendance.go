package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	a.id, a.card_id, a.user_id, a.company_id,
	a.start_date, a.start_hour, a.start_minute,
	a.end_date, a.end_hour, a.end_minute,
	a.is_strange_activity, a.strange_activity_reason,
	a.resolved_at, a.resolved_by_id,
	a.created_at, a.updated_at,
	c.number AS card_number,
	u.name AS user_name`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var endHour, endMinute *int
	err := row.Scan(
		&att.ID, &att.CardID, &att.UserID, &att.CompanyID,
		&att.StartDate, &att.StartHour, &att.StartMinute,
		&att.EndDate, &endHour, &endMinute,
		&att.IsStrangeActivity, &att.StrangeActivityReason,
		&att.ResolvedAt, &att.ResolvedByID,
		&att.CreatedAt, &att.UpdatedAt,
		&att.CardNumber, &att.UserName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if endHour != nil {
		att.EndHour = *endHour
	}
	if endMinute != nil {
		att.EndMinute = *endMinute
	}
	return att, nil
}

func endComponents(att attendance.Attendance) (endHour, endMinute *int) {
	if att.EndDate == nil {
		return nil, nil
	}
	h, m := att.EndHour, att.EndMinute
	return &h, &m
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			card_id, user_id, company_id,
			start_date, start_hour, start_minute,
			end_date, end_hour, end_minute,
			is_strange_activity, strange_activity_reason,
			resolved_at, resolved_by_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	endHour, endMinute := endComponents(newAttendance)
	err := q.QueryRow(ctx, query,
		newAttendance.CardID,
		newAttendance.UserID,
		newAttendance.CompanyID,
		newAttendance.StartDate,
		newAttendance.StartHour,
		newAttendance.StartMinute,
		newAttendance.EndDate,
		endHour,
		endMinute,
		newAttendance.IsStrangeActivity,
		newAttendance.StrangeActivityReason,
		newAttendance.ResolvedAt,
		newAttendance.ResolvedByID,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN cards c ON c.id = a.card_id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, fmt.Errorf("attendance not found: %w", err)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetLastByCardID implements attendance.AttendanceRepository. The open record
// wins when several share the most recent start timestamp.
func (a *attendanceRepository) GetLastByCardID(ctx context.Context, cardID int) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN cards c ON c.id = a.card_id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.card_id = $1
		ORDER BY a.start_date DESC, a.start_hour DESC, a.start_minute DESC,
			(a.end_date IS NULL) DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, cardID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Card has no attendance history
		}
		return nil, fmt.Errorf("failed to get last attendance by card: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			card_id = $2, user_id = $3, company_id = $4,
			start_date = $5, start_hour = $6, start_minute = $7,
			end_date = $8, end_hour = $9, end_minute = $10,
			is_strange_activity = $11, strange_activity_reason = $12,
			resolved_at = $13, resolved_by_id = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	endHour, endMinute := endComponents(att)
	tag, err := q.Exec(ctx, query,
		att.ID,
		att.CardID,
		att.UserID,
		att.CompanyID,
		att.StartDate,
		att.StartHour,
		att.StartMinute,
		att.EndDate,
		endHour,
		endMinute,
		att.IsStrangeActivity,
		att.StrangeActivityReason,
		att.ResolvedAt,
		att.ResolvedByID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.CardID != nil {
		baseWhere += fmt.Sprintf(" AND a.card_id = $%d", argIdx)
		args = append(args, *filter.CardID)
		argIdx++
	}

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.start_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.start_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.ExcludeID != nil {
		baseWhere += fmt.Sprintf(" AND a.id != $%d", argIdx)
		args = append(args, *filter.ExcludeID)
		argIdx++
	}

	if filter.OnlyStrange != nil && *filter.OnlyStrange {
		baseWhere += " AND a.is_strange_activity = TRUE"
	}
	if filter.OnlyOpen != nil && *filter.OnlyOpen {
		baseWhere += " AND a.end_date IS NULL"
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Build ORDER BY
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}
	orderBy := fmt.Sprintf("a.start_date %s, a.start_hour %s, a.start_minute %s", sortOrder, sortOrder, sortOrder)
	switch filter.SortBy {
	case "end_date":
		orderBy = fmt.Sprintf("a.end_date %s, a.end_hour %s, a.end_minute %s", sortOrder, sortOrder, sortOrder)
	case "card_id":
		orderBy = fmt.Sprintf("a.card_id %s", sortOrder)
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		LEFT JOIN cards c ON c.id = a.card_id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, orderBy, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// ListByCard implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByCard(ctx context.Context, cardID int, excludeID *int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN cards c ON c.id = a.card_id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.card_id = $1 AND ($2::int IS NULL OR a.id != $2)
		ORDER BY a.start_date, a.start_hour, a.start_minute
	`

	rows, err := q.Query(ctx, query, cardID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by card: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, nil
}

// ListForStrangeActivity implements attendance.AttendanceRepository. Returns
// the card's records from the day before endDate through endDate. Open
// records are included; the evaluator decides how to weigh them.
func (a *attendanceRepository) ListForStrangeActivity(ctx context.Context, cardID int, endDate time.Time, excludeID *int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN cards c ON c.id = a.card_id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.card_id = $1
		  AND a.start_date >= $2::date - INTERVAL '1 day'
		  AND (a.end_date IS NULL OR a.end_date <= $2::date)
		  AND ($3::int IS NULL OR a.id != $3)
		ORDER BY a.start_date, a.start_hour, a.start_minute
	`

	rows, err := q.Query(ctx, query, cardID, endDate, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances for review: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, nil
}

// HasPointCollision implements attendance.AttendanceRepository. An open
// record always collides; a closed one collides when its end is strictly
// after the point.
func (a *attendanceRepository) HasPointCollision(ctx context.Context, cardID int, startDate time.Time, startHour, startMinute int, excludeID *int) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendances a
			WHERE a.card_id = $1
			  AND ($5::int IS NULL OR a.id != $5)
			  AND (
				a.end_date IS NULL
				OR a.end_date + make_interval(hours => a.end_hour, mins => a.end_minute)
					> $2::date + make_interval(hours => $3, mins => $4)
			  )
		)
	`

	var colliding bool
	err := q.QueryRow(ctx, query, cardID, startDate, startHour, startMinute, excludeID).Scan(&colliding)
	if err != nil {
		return false, fmt.Errorf("failed to check point collision: %w", err)
	}

	return colliding, nil
}

// LockCard implements attendance.AttendanceRepository. Takes an advisory lock
// scoped to the current transaction so punches on one card run one at a time.
func (a *attendanceRepository) LockCard(ctx context.Context, cardID int) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('attendance_card'), $1)`, cardID); err != nil {
		return fmt.Errorf("failed to lock card %d: %w", cardID, err)
	}
	return nil
}
