package absence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/absence"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/timeclock-hq/timeclock-backend-go/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type AbsenceServiceImpl struct {
	db *database.DB
	absence.AbsenceRepository
	absence.AbsenceTypeRepository
	user.UserRepository
}

func NewAbsenceService(
	db *database.DB,
	absenceRepo absence.AbsenceRepository,
	absenceTypeRepo absence.AbsenceTypeRepository,
	userRepo user.UserRepository,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		db:                    db,
		AbsenceRepository:     absenceRepo,
		AbsenceTypeRepository: absenceTypeRepo,
		UserRepository:        userRepo,
	}
}

// CreateAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) CreateAbsence(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	exists, err := s.UserRepository.Exists(ctx, req.UserID)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return absence.AbsenceResponse{}, user.ErrUserNotFound
	}

	if _, err := s.AbsenceTypeRepository.GetByID(ctx, req.AbsenceTypeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceTypeNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get absence type: %w", err)
	}

	data, err := buildAbsence(absence.Absence{
		StatusOfType:  absence.StatusPending,
		StatusOfDates: absence.StatusPending,
	}, req.UserID, req.AbsenceTypeID, req.StartDate, req.StartHour, req.StartMinute, req.EndDate, req.EndHour, req.EndMinute, req.IsFullDate, req.Reason)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	created, err := s.AbsenceRepository.Create(ctx, data)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return mapAbsenceToResponse(created), nil
}

// UpdateAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) UpdateAbsence(ctx context.Context, req absence.UpdateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	target, err := s.AbsenceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get absence: %w", err)
	}

	exists, err := s.UserRepository.Exists(ctx, req.UserID)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return absence.AbsenceResponse{}, user.ErrUserNotFound
	}

	if _, err := s.AbsenceTypeRepository.GetByID(ctx, req.AbsenceTypeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceTypeNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get absence type: %w", err)
	}

	data, err := buildAbsence(target, req.UserID, req.AbsenceTypeID, req.StartDate, req.StartHour, req.StartMinute, req.EndDate, req.EndHour, req.EndMinute, req.IsFullDate, req.Reason)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	if err := s.AbsenceRepository.Update(ctx, data); err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to update absence: %w", err)
	}

	return mapAbsenceToResponse(data), nil
}

// ToggleStatus implements absence.AbsenceService. Sub-statuses only ever move
// from pending to confirmed; a confirmed request leaves them untouched.
func (s *AbsenceServiceImpl) ToggleStatus(ctx context.Context, req absence.ToggleStatusRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	var updated absence.Absence
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		target, err := s.AbsenceRepository.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return absence.ErrAbsenceNotFound
			}
			return fmt.Errorf("failed to get absence: %w", err)
		}

		if req.StatusOfType != nil && *req.StatusOfType == absence.StatusConfirmed {
			target.ConfirmType()
		}
		if req.StatusOfDates != nil && *req.StatusOfDates == absence.StatusConfirmed {
			target.ConfirmDates()
		}

		if err := s.AbsenceRepository.Update(txCtx, target); err != nil {
			return fmt.Errorf("failed to update absence: %w", err)
		}
		updated = target
		return nil
	})
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	return mapAbsenceToResponse(updated), nil
}

// DeleteAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) DeleteAbsence(ctx context.Context, id int) error {
	_, err := s.AbsenceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.ErrAbsenceNotFound
		}
		return fmt.Errorf("failed to get absence: %w", err)
	}

	if err := s.AbsenceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	return nil
}

// GetAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) GetAbsence(ctx context.Context, id int) (absence.AbsenceResponse, error) {
	data, err := s.AbsenceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get absence: %w", err)
	}
	return mapAbsenceToResponse(data), nil
}

// ListAbsences implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListAbsences(ctx context.Context, filter absence.AbsenceFilter) (absence.ListAbsencesResponse, error) {
	if err := filter.Validate(); err != nil {
		return absence.ListAbsencesResponse{}, err
	}

	absences, total, err := s.AbsenceRepository.List(ctx, filter)
	if err != nil {
		return absence.ListAbsencesResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(absences))
	for _, abs := range absences {
		responses = append(responses, mapAbsenceToResponse(abs))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return absence.ListAbsencesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Absences:   responses,
	}, nil
}

// ListAbsenceTypes implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListAbsenceTypes(ctx context.Context) ([]absence.AbsenceTypeResponse, error) {
	types, err := s.AbsenceTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence types: %w", err)
	}

	responses := make([]absence.AbsenceTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, absence.AbsenceTypeResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return responses, nil
}

func buildAbsence(base absence.Absence, userID string, typeID int,
	startDate string, startHour, startMinute int,
	endDate string, endHour, endMinute int,
	isFullDate bool, reason *string) (absence.Absence, error) {

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return absence.Absence{}, absence.ErrInvalidTimeOfDay
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return absence.Absence{}, absence.ErrInvalidTimeOfDay
	}

	base.UserID = userID
	base.AbsenceTypeID = typeID
	base.StartDate = start
	base.StartHour = startHour
	base.StartMinute = startMinute
	base.EndDate = end
	base.EndHour = endHour
	base.EndMinute = endMinute
	base.IsFullDate = isFullDate
	base.Reason = reason

	return absence.NewAbsence(base)
}

func mapAbsenceToResponse(abs absence.Absence) absence.AbsenceResponse {
	return absence.AbsenceResponse{
		ID:               abs.ID,
		UserID:           abs.UserID,
		UserName:         abs.UserName,
		AbsenceTypeID:    abs.AbsenceTypeID,
		TypeName:         abs.TypeName,
		StartDate:        abs.StartDate.Format(dateLayout),
		StartHour:        abs.StartHour,
		StartMinute:      abs.StartMinute,
		EndDate:          abs.EndDate.Format(dateLayout),
		EndHour:          abs.EndHour,
		EndMinute:        abs.EndMinute,
		IsFullDate:       abs.IsFullDate,
		Reason:           abs.Reason,
		StatusOfType:     abs.StatusOfType,
		StatusOfDates:    abs.StatusOfDates,
		IsFullyConfirmed: abs.IsFullyConfirmed,
		CreatedAt:        abs.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        abs.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
