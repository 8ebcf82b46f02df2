package card

import (
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// CARD DTOs
// ========================================

type CreateCardRequest struct {
	Number    string `json:"number"`
	UserID    string `json:"user_id"`
	CompanyID int    `json:"company_id"`
	Type      string `json:"type"`
}

func (r *CreateCardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Number) {
		errs = append(errs, validator.ValidationError{
			Field:   "number",
			Message: "number is required",
		})
	} else if !validator.IsValidCardNumber(r.Number) {
		errs = append(errs, validator.ValidationError{
			Field:   "number",
			Message: "number must be 4 to 32 digits",
		})
	}

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a positive number",
		})
	}

	if !validator.IsInSlice(r.Type, []string{TypePersonal, TypeTemporary}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: personal, temporary",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DeleteCardRequest retires a card. The admin performing the deletion is
// recorded on the card.
type DeleteCardRequest struct {
	ID      int    `json:"-"`
	AdminID string `json:"-"`
}

func (r *DeleteCardRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CardResponse struct {
	ID          int     `json:"id"`
	Number      string  `json:"number"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	CompanyID   int     `json:"company_id"`
	Type        string  `json:"type"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	DeletedAt   *string `json:"deleted_at,omitempty"`
	DeletedByID *string `json:"deleted_by_id,omitempty"`
}

type CardFilter struct {
	// Search & Filter
	UserID         *string `json:"user_id,omitempty"`
	CompanyID      *int    `json:"company_id,omitempty"`
	Type           *string `json:"type,omitempty"`
	IncludeDeleted bool    `json:"include_deleted"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *CardFilter) Validate() error {
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

	if f.Type != nil && !validator.IsInSlice(*f.Type, []string{TypePersonal, TypeTemporary}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: personal, temporary",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListCardsResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Showing    string         `json:"showing"`
	Cards      []CardResponse `json:"cards"`
}
