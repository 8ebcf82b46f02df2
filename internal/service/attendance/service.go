package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/card"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/timeclock-hq/timeclock-backend-go/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	card.CardRepository
	user.UserRepository

	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	cardRepo card.CardRepository,
	userRepo user.UserRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		CardRepository:       cardRepo,
		UserRepository:       userRepo,
		now:                  time.Now,
	}
}

// CardPunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CardPunch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}
	now := a.now().UTC()

	cardData, err := a.CardRepository.GetByNumber(ctx, req.CardNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchResponse{}, card.ErrCardNotFound
		}
		return attendance.PunchResponse{}, fmt.Errorf("failed to get card by number: %w", err)
	}

	var resp attendance.PunchResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Serialize concurrent punches on the same card.
		if err := a.AttendanceRepository.LockCard(txCtx, cardData.ID); err != nil {
			return fmt.Errorf("failed to lock card: %w", err)
		}

		last, err := a.AttendanceRepository.GetLastByCardID(txCtx, cardData.ID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get last attendance: %w", err)
		}

		if last == nil || !last.IsOpen() {
			opened, err := a.openInterval(txCtx, cardData, now)
			if err != nil {
				return err
			}
			resp = attendance.PunchResponse{
				Action:     "opened",
				Attendance: mapAttendanceToResponse(opened),
			}
			return nil
		}

		elapsed := now.Sub(last.StartDateTime())
		closed, err := a.closeInterval(txCtx, *last, now)
		if err != nil {
			return err
		}

		if elapsed <= attendance.MaxDailyWorkHours*time.Hour {
			resp = attendance.PunchResponse{
				Action:     "closed",
				Attendance: mapAttendanceToResponse(closed),
			}
			return nil
		}

		// The clock-out was forgotten: cap the stale interval and start a
		// fresh one at the same instant.
		reopened, err := a.openInterval(txCtx, cardData, now)
		if err != nil {
			return err
		}
		remainder := mapAttendanceToResponse(reopened)
		resp = attendance.PunchResponse{
			Action:      "split",
			Attendance:  mapAttendanceToResponse(closed),
			SplitRemain: &remainder,
		}
		return nil
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	return resp, nil
}

func (a *AttendanceServiceImpl) openInterval(ctx context.Context, cardData card.Card, now time.Time) (attendance.Attendance, error) {
	data, err := attendance.NewAttendance(attendance.Attendance{
		CardID:      cardData.ID,
		UserID:      cardData.UserID,
		CompanyID:   cardData.CompanyID,
		StartDate:   now,
		StartHour:   now.Hour(),
		StartMinute: now.Minute(),
	}, now)
	if err != nil {
		return attendance.Attendance{}, err
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

func (a *AttendanceServiceImpl) closeInterval(ctx context.Context, open attendance.Attendance, now time.Time) (attendance.Attendance, error) {
	endDate := now
	open.EndDate = &endDate
	open.EndHour = now.Hour()
	open.EndMinute = now.Minute()

	siblings, err := a.AttendanceRepository.ListForStrangeActivity(ctx, open.CardID, endDate, &open.ID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to list attendance for review: %w", err)
	}

	open.IsStrangeActivity = false
	open.StrangeActivityReason = nil
	if evalErr := attendance.EvaluateStrangeActivity(
		open.StartDate, open.StartHour, open.StartMinute,
		open.EndDate, open.EndHour, open.EndMinute,
		siblings,
	); evalErr != nil {
		open.IsStrangeActivity = true
		reason := truncateReason(evalErr.Error())
		open.StrangeActivityReason = &reason
	}

	data, err := attendance.NewAttendance(open, now)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if err := a.AttendanceRepository.Update(ctx, data); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return data, nil
}

// AdminCreate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AdminCreate(ctx context.Context, req attendance.AdminCreateRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := a.now().UTC()

	isAdmin, err := a.UserRepository.ExistsAdmin(ctx, req.AdminID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check admin user: %w", err)
	}
	if !isAdmin {
		return attendance.AttendanceResponse{}, attendance.ErrAdminNotFound
	}

	cardData, err := a.CardRepository.GetByID(ctx, req.CardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, card.ErrCardNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get card: %w", err)
	}

	data, err := buildAttendance(attendance.Attendance{}, cardData, req.StartDate, req.StartHour, req.StartMinute, req.EndDate, req.EndHour, req.EndMinute, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.AttendanceRepository.LockCard(txCtx, cardData.ID); err != nil {
			return fmt.Errorf("failed to lock card: %w", err)
		}

		if err := a.checkCollision(txCtx, data, nil); err != nil {
			return err
		}

		created, err = a.AttendanceRepository.Create(txCtx, data)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// UpdateOrResolve implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateOrResolve(ctx context.Context, req attendance.UpdateOrResolveRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := a.now().UTC()

	isAdmin, err := a.UserRepository.ExistsAdmin(ctx, req.AdminID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check admin user: %w", err)
	}
	if !isAdmin {
		return attendance.AttendanceResponse{}, attendance.ErrAdminNotFound
	}

	var updated attendance.Attendance
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		target, err := a.AttendanceRepository.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrAttendanceNotFound
			}
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		cardData, err := a.CardRepository.GetByID(txCtx, req.CardID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return card.ErrCardNotFound
			}
			return fmt.Errorf("failed to get card: %w", err)
		}

		if err := a.AttendanceRepository.LockCard(txCtx, cardData.ID); err != nil {
			return fmt.Errorf("failed to lock card: %w", err)
		}

		data, err := buildAttendance(target, cardData, req.StartDate, req.StartHour, req.StartMinute, req.EndDate, req.EndHour, req.EndMinute, now)
		if err != nil {
			return err
		}

		if err := a.checkCollision(txCtx, data, &req.ID); err != nil {
			return err
		}

		data.IsStrangeActivity = false
		data.StrangeActivityReason = nil
		if !req.ForceResolve {
			siblings, err := a.AttendanceRepository.ListForStrangeActivity(txCtx, cardData.ID, siblingWindowEnd(data), &req.ID)
			if err != nil {
				return fmt.Errorf("failed to list attendance for review: %w", err)
			}
			if evalErr := attendance.EvaluateStrangeActivity(
				data.StartDate, data.StartHour, data.StartMinute,
				data.EndDate, data.EndHour, data.EndMinute,
				siblings,
			); evalErr != nil {
				data.IsStrangeActivity = true
				reason := truncateReason(evalErr.Error())
				data.StrangeActivityReason = &reason
			}
		}

		// A previously flagged record that comes out clean was just resolved
		// by the acting admin.
		if target.IsStrangeActivity && !data.IsStrangeActivity {
			resolvedAt := now
			adminID := req.AdminID
			data.ResolvedAt = &resolvedAt
			data.ResolvedByID = &adminID
		}

		data, err = attendance.NewAttendance(data, now)
		if err != nil {
			return err
		}

		if err := a.AttendanceRepository.Update(txCtx, data); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		updated = data
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(updated), nil
}

// Update implements attendance.AttendanceService. Plain updates are blocked
// so every edit goes through UpdateOrResolve and its checks.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateOrResolveRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendance.ErrUpdateMethodNotAllowed
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int) error {
	_, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to get attendance: %w", err)
	}

	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id int) (attendance.AttendanceResponse, error) {
	data, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return mapAttendanceToResponse(data), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// checkCollision runs the range check when the candidate is closed and the
// point check when it is still open.
func (a *AttendanceServiceImpl) checkCollision(ctx context.Context, data attendance.Attendance, excludeID *int) error {
	if data.EndDate == nil {
		colliding, err := a.AttendanceRepository.HasPointCollision(ctx, data.CardID, data.StartDate, data.StartHour, data.StartMinute, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check collisions: %w", err)
		}
		if colliding {
			return attendance.ErrAttendanceCollision
		}
		return nil
	}

	existing, err := a.AttendanceRepository.ListByCard(ctx, data.CardID, excludeID)
	if err != nil {
		return fmt.Errorf("failed to list attendance for card: %w", err)
	}
	if attendance.HasRangeCollision(existing, data.StartDate, data.StartHour, data.StartMinute, *data.EndDate, data.EndHour, data.EndMinute, excludeID) {
		return attendance.ErrAttendanceCollision
	}
	return nil
}

// buildAttendance assembles a validated record from request fields, copying
// the card's user and company binding.
func buildAttendance(base attendance.Attendance, cardData card.Card,
	startDate string, startHour, startMinute int,
	endDate *string, endHour, endMinute int,
	now time.Time) (attendance.Attendance, error) {

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return attendance.Attendance{}, attendance.ErrInvalidStartTime
	}

	base.CardID = cardData.ID
	base.UserID = cardData.UserID
	base.CompanyID = cardData.CompanyID
	base.StartDate = start
	base.StartHour = startHour
	base.StartMinute = startMinute
	base.EndDate = nil
	base.EndHour = 0
	base.EndMinute = 0

	if endDate != nil && *endDate != "" {
		end, err := time.Parse(dateLayout, *endDate)
		if err != nil {
			return attendance.Attendance{}, attendance.ErrInvalidEndDate
		}
		base.EndDate = &end
		base.EndHour = endHour
		base.EndMinute = endMinute
	}

	return attendance.NewAttendance(base, now)
}

// siblingWindowEnd picks the day the review window is anchored on: the end
// date for closed intervals, the start date while still open.
func siblingWindowEnd(data attendance.Attendance) time.Time {
	if data.EndDate != nil {
		return *data.EndDate
	}
	return data.StartDate
}

func truncateReason(reason string) string {
	if len(reason) > attendance.MaxStrangeActivityReasonLength {
		return reason[:attendance.MaxStrangeActivityReasonLength]
	}
	return reason
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                    att.ID,
		CardID:                att.CardID,
		CardNumber:            att.CardNumber,
		UserID:                att.UserID,
		UserName:              att.UserName,
		CompanyID:             att.CompanyID,
		StartDate:             att.StartDate.Format(dateLayout),
		StartHour:             att.StartHour,
		StartMinute:           att.StartMinute,
		IsStrangeActivity:     att.IsStrangeActivity,
		StrangeActivityReason: att.StrangeActivityReason,
		ResolvedAt:            timePtrToString(att.ResolvedAt),
		ResolvedByID:          att.ResolvedByID,
		CreatedAt:             att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:             att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if att.EndDate != nil {
		endDate := att.EndDate.Format(dateLayout)
		endHour := att.EndHour
		endMinute := att.EndMinute
		resp.EndDate = &endDate
		resp.EndHour = &endHour
		resp.EndMinute = &endMinute
	}
	return resp
}
