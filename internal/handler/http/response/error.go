package response

import (
	"errors"
	"net/http"

	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/absence"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/card"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/company"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/holiday"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/token"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceCollision):
		Conflict(w, "Attendance dates collide with existing records")
	case errors.Is(err, attendance.ErrAdminNotFound):
		NotFound(w, "Admin user not found")
	case errors.Is(err, attendance.ErrUpdateMethodNotAllowed):
		MethodNotAllowed(w, "Direct attendance update is not allowed")
	case errors.Is(err, attendance.ErrInvalidCardID),
		errors.Is(err, attendance.ErrInvalidUserID),
		errors.Is(err, attendance.ErrInvalidCompanyID),
		errors.Is(err, attendance.ErrInvalidStartTime),
		errors.Is(err, attendance.ErrStartTimeInFuture),
		errors.Is(err, attendance.ErrInvalidEndTime),
		errors.Is(err, attendance.ErrInvalidEndDate),
		errors.Is(err, attendance.ErrEndTimeNotAfterStartTime),
		errors.Is(err, attendance.ErrEndTimeInFuture),
		errors.Is(err, attendance.ErrInvalidResolvedPair),
		errors.Is(err, attendance.ErrStrangeActivityReasonTooLong):
		BadRequest(w, err.Error(), nil)

	// Card domain errors
	case errors.Is(err, card.ErrCardNotFound):
		NotFound(w, "Card not found")
	case errors.Is(err, card.ErrCardNumberTaken):
		Conflict(w, "Card number is already in use")
	case errors.Is(err, card.ErrCardAlreadyDeleted):
		Conflict(w, "Card has already been deleted")
	case errors.Is(err, card.ErrInvalidCardNumber),
		errors.Is(err, card.ErrInvalidUserID),
		errors.Is(err, card.ErrInvalidCompanyID),
		errors.Is(err, card.ErrInvalidCardType),
		errors.Is(err, card.ErrInvalidDeletedPair):
		BadRequest(w, err.Error(), nil)

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absence.ErrAbsenceTypeNotFound):
		NotFound(w, "Absence type not found")
	case errors.Is(err, absence.ErrInvalidUserID),
		errors.Is(err, absence.ErrInvalidAbsenceTypeID),
		errors.Is(err, absence.ErrInvalidDateRangeForFullDay),
		errors.Is(err, absence.ErrPartialDayDateMismatch),
		errors.Is(err, absence.ErrEndTimeNotAfterStartTime),
		errors.Is(err, absence.ErrInvalidTimeOfDay),
		errors.Is(err, absence.ErrReasonTooLong),
		errors.Is(err, absence.ErrInvalidConfirmationStatus):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrInvalidName),
		errors.Is(err, holiday.ErrInvalidDateRange),
		errors.Is(err, holiday.ErrDescriptionTooLong):
		BadRequest(w, err.Error(), nil)

	// User and company domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrCreateNotSupported):
		MethodNotAllowed(w, "User creation is not supported")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Token domain errors
	case errors.Is(err, token.ErrTokenNotFound):
		NotFound(w, "Confirmation token not found")
	case errors.Is(err, token.ErrTokenExpired):
		BadRequest(w, "Confirmation token has expired", nil)
	case errors.Is(err, token.ErrTokenUsed):
		Conflict(w, "Confirmation token has already been used")
	case errors.Is(err, token.ErrDeleteNotSupported):
		MethodNotAllowed(w, "Confirmation token deletion is not supported")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
