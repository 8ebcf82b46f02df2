package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/holiday"
)

const dateLayout = "2006-01-02"

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
	}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return holiday.HolidayResponse{}, holiday.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return holiday.HolidayResponse{}, holiday.ErrInvalidDateRange
	}

	data, err := holiday.NewHoliday(holiday.Holiday{
		Name:        req.Name,
		LocalName:   req.LocalName,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.HolidayRepository.Create(ctx, data)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(created), nil
}

// GetHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetHoliday(ctx context.Context, id int) (holiday.HolidayResponse, error) {
	data, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return mapHolidayToResponse(data), nil
}

// ListHolidaysByRange implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidaysByRange(ctx context.Context, filter holiday.HolidayRangeFilter) ([]holiday.HolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, err := time.Parse(dateLayout, filter.StartDate)
	if err != nil {
		return nil, holiday.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, filter.EndDate)
	if err != nil {
		return nil, holiday.ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, holiday.ErrInvalidDateRange
	}

	holidays, err := s.HolidayRepository.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id int) error {
	_, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to get holiday: %w", err)
	}

	if err := s.HolidayRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		LocalName:   h.LocalName,
		StartDate:   h.StartDate.Format(dateLayout),
		EndDate:     h.EndDate.Format(dateLayout),
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   h.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
