package attendance

import (
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// PunchRequest is a raw card swipe. The terminal only knows the card number;
// the service decides whether the swipe opens or closes an interval.
type PunchRequest struct {
	CardNumber string `json:"card_number"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CardNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_number",
			Message: "card_number is required",
		})
	} else if !validator.IsValidCardNumber(r.CardNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_number",
			Message: "card_number must be 4 to 32 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchResponse reports what a swipe did to the card's current interval.
type PunchResponse struct {
	Action      string             `json:"action"` // opened, closed, split
	Attendance  AttendanceResponse `json:"attendance"`
	SplitRemain *AttendanceResponse `json:"split_remainder,omitempty"`
}

// AdminCreateRequest creates an attendance record on someone's behalf.
// End fields are optional; leaving them empty creates an open interval.
type AdminCreateRequest struct {
	AdminID     string  `json:"-"`
	CardID      int     `json:"card_id"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	StartHour   int     `json:"start_hour"`
	StartMinute int     `json:"start_minute"`
	EndDate     *string `json:"end_date,omitempty"` // YYYY-MM-DD
	EndHour     int     `json:"end_hour"`
	EndMinute   int     `json:"end_minute"`
}

func (r *AdminCreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_id",
			Message: "admin_id is required",
		})
	}

	if r.CardID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "card_id",
			Message: "card_id must be a positive number",
		})
	}

	if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidTimeOfDay(r.StartHour, r.StartMinute) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_hour",
			Message: "start_hour and start_minute must form a valid time of day",
		})
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
		if !validator.IsValidTimeOfDay(r.EndHour, r.EndMinute) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_hour",
				Message: "end_hour and end_minute must form a valid time of day",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateOrResolveRequest rewrites an attendance record's window and, when the
// rewrite clears a strange-activity flag, stamps who resolved it. This is the
// only supported way to edit an existing record.
type UpdateOrResolveRequest struct {
	ID           int     `json:"-"`
	AdminID      string  `json:"-"`
	CardID       int     `json:"card_id"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	StartHour    int     `json:"start_hour"`
	StartMinute  int     `json:"start_minute"`
	EndDate      *string `json:"end_date,omitempty"` // YYYY-MM-DD
	EndHour      int     `json:"end_hour"`
	EndMinute    int     `json:"end_minute"`
	ForceResolve bool    `json:"force_resolve"`
}

func (r *UpdateOrResolveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive number",
		})
	}

	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_id",
			Message: "admin_id is required",
		})
	}

	if r.CardID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "card_id",
			Message: "card_id must be a positive number",
		})
	}

	if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidTimeOfDay(r.StartHour, r.StartMinute) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_hour",
			Message: "start_hour and start_minute must form a valid time of day",
		})
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
		if !validator.IsValidTimeOfDay(r.EndHour, r.EndMinute) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_hour",
				Message: "end_hour and end_minute must form a valid time of day",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                    int     `json:"id"`
	CardID                int     `json:"card_id"`
	CardNumber            *string `json:"card_number,omitempty"`
	UserID                string  `json:"user_id"`
	UserName              *string `json:"user_name,omitempty"`
	CompanyID             int     `json:"company_id"`
	StartDate             string  `json:"start_date"` // YYYY-MM-DD
	StartHour             int     `json:"start_hour"`
	StartMinute           int     `json:"start_minute"`
	EndDate               *string `json:"end_date,omitempty"` // YYYY-MM-DD
	EndHour               *int    `json:"end_hour,omitempty"`
	EndMinute             *int    `json:"end_minute,omitempty"`
	IsStrangeActivity     bool    `json:"is_strange_activity"`
	StrangeActivityReason *string `json:"strange_activity_reason,omitempty"`
	ResolvedAt            *string `json:"resolved_at,omitempty"`
	ResolvedByID          *string `json:"resolved_by_id,omitempty"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type AttendanceFilter struct {
	// Search & Filter
	CardID       *int    `json:"card_id,omitempty"`
	UserID       *string `json:"user_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	ExcludeID    *int    `json:"exclude_id,omitempty"`
	OnlyStrange  *bool   `json:"only_strange,omitempty"`
	OnlyOpen     *bool   `json:"only_open,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // start_date, end_date, card_id
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
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

	if f.CardID != nil && *f.CardID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "card_id",
			Message: "card_id must be a positive number",
		})
	}

	// Date validation
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

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"start_date", "end_date", "card_id"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: start_date, end_date, card_id",
			})
		}
	} else {
		f.SortBy = "start_date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(f.SortOrder, validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
