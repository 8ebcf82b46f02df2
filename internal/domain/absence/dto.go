package absence

import (
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ABSENCE DTOs
// ========================================

type CreateAbsenceRequest struct {
	UserID        string  `json:"user_id"`
	AbsenceTypeID int     `json:"absence_type_id"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD
	StartHour     int     `json:"start_hour"`
	StartMinute   int     `json:"start_minute"`
	EndDate       string  `json:"end_date"` // YYYY-MM-DD
	EndHour       int     `json:"end_hour"`
	EndMinute     int     `json:"end_minute"`
	IsFullDate    bool    `json:"is_full_date"`
	Reason        *string `json:"reason,omitempty"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.AbsenceTypeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type_id",
			Message: "absence_type_id must be a positive number",
		})
	}

	if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, valid := validator.IsValidDate(r.EndDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if !r.IsFullDate {
		if !validator.IsValidTimeOfDay(r.StartHour, r.StartMinute) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_hour",
				Message: "start_hour and start_minute must form a valid time of day",
			})
		}
		if !validator.IsValidTimeOfDay(r.EndHour, r.EndMinute) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_hour",
				Message: "end_hour and end_minute must form a valid time of day",
			})
		}
	}

	if r.Reason != nil && len(*r.Reason) > MaxReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 360 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAbsenceRequest rewrites an absence's window, type and reason. The
// confirmation sub-statuses are untouched; use ToggleStatusRequest for those.
type UpdateAbsenceRequest struct {
	ID            int     `json:"-"`
	UserID        string  `json:"user_id"`
	AbsenceTypeID int     `json:"absence_type_id"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD
	StartHour     int     `json:"start_hour"`
	StartMinute   int     `json:"start_minute"`
	EndDate       string  `json:"end_date"` // YYYY-MM-DD
	EndHour       int     `json:"end_hour"`
	EndMinute     int     `json:"end_minute"`
	IsFullDate    bool    `json:"is_full_date"`
	Reason        *string `json:"reason,omitempty"`
}

func (r *UpdateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive number",
		})
	}

	create := CreateAbsenceRequest{
		UserID:        r.UserID,
		AbsenceTypeID: r.AbsenceTypeID,
		StartDate:     r.StartDate,
		StartHour:     r.StartHour,
		StartMinute:   r.StartMinute,
		EndDate:       r.EndDate,
		EndHour:       r.EndHour,
		EndMinute:     r.EndMinute,
		IsFullDate:    r.IsFullDate,
		Reason:        r.Reason,
	}
	if err := create.Validate(); err != nil {
		if nested, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, nested...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToggleStatusRequest confirms one or both sub-statuses. Omitted fields stay
// as they are; confirmation never reverts to pending.
type ToggleStatusRequest struct {
	ID            int     `json:"-"`
	StatusOfType  *string `json:"status_of_type,omitempty"`
	StatusOfDates *string `json:"status_of_dates,omitempty"`
}

func (r *ToggleStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive number",
		})
	}

	if r.StatusOfType == nil && r.StatusOfDates == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status_of_type",
			Message: "at least one of status_of_type or status_of_dates is required",
		})
	}

	validStatuses := []string{StatusPending, StatusConfirmed}
	if r.StatusOfType != nil && !validator.IsInSlice(*r.StatusOfType, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status_of_type",
			Message: "status_of_type must be one of: pending, confirmed",
		})
	}
	if r.StatusOfDates != nil && !validator.IsInSlice(*r.StatusOfDates, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status_of_dates",
			Message: "status_of_dates must be one of: pending, confirmed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsenceResponse struct {
	ID               int     `json:"id"`
	UserID           string  `json:"user_id"`
	UserName         *string `json:"user_name,omitempty"`
	AbsenceTypeID    int     `json:"absence_type_id"`
	TypeName         *string `json:"type_name,omitempty"`
	StartDate        string  `json:"start_date"` // YYYY-MM-DD
	StartHour        int     `json:"start_hour"`
	StartMinute      int     `json:"start_minute"`
	EndDate          string  `json:"end_date"` // YYYY-MM-DD
	EndHour          int     `json:"end_hour"`
	EndMinute        int     `json:"end_minute"`
	IsFullDate       bool    `json:"is_full_date"`
	Reason           *string `json:"reason,omitempty"`
	StatusOfType     string  `json:"status_of_type"`
	StatusOfDates    string  `json:"status_of_dates"`
	IsFullyConfirmed bool    `json:"is_fully_confirmed"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type AbsenceFilter struct {
	// Search & Filter
	UserID         *string `json:"user_id,omitempty"`
	AbsenceTypeID  *int    `json:"absence_type_id,omitempty"`
	StartDate      *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate        *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	FullyConfirmed *bool   `json:"fully_confirmed,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AbsenceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.AbsenceTypeID != nil && *f.AbsenceTypeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type_id",
			Message: "absence_type_id must be a positive number",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAbsencesResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Showing    string            `json:"showing"`
	Absences   []AbsenceResponse `json:"absences"`
}

// ========================================
// ABSENCE TYPE DTOs
// ========================================

type AbsenceTypeResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
