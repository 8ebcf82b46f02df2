package token

import (
	"time"

	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// CONFIRMATION TOKEN DTOs
// ========================================

type IssueTokenRequest struct {
	UserID  string `json:"user_id"`
	Purpose string `json:"purpose"`
	TTL     string `json:"ttl"`
}

func (r *IssueTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Purpose) {
		errs = append(errs, validator.ValidationError{
			Field:   "purpose",
			Message: "purpose is required",
		})
	}

	if validator.IsEmpty(r.TTL) {
		errs = append(errs, validator.ValidationError{
			Field:   "ttl",
			Message: "ttl is required",
		})
	} else if d, err := time.ParseDuration(r.TTL); err != nil || d <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ttl",
			Message: "ttl must be a positive duration, e.g. 24h",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RedeemTokenRequest struct {
	Token string `json:"token"`
}

func (r *RedeemTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	ID        int        `json:"id"`
	Token     string     `json:"token"`
	UserID    string     `json:"user_id"`
	Purpose   string     `json:"purpose"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
