package absence

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFullDayAbsence() Absence {
	return Absence{
		UserID:        "user-1",
		AbsenceTypeID: 1,
		StartDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		IsFullDate:    true,
	}
}

func TestNewAbsence_FullDayNormalizesTimes(t *testing.T) {
	a := validFullDayAbsence()
	a.StartHour, a.StartMinute = 9, 15
	a.EndHour, a.EndMinute = 14, 45

	result, err := NewAbsence(a)

	require.NoError(t, err)
	assert.Equal(t, 0, result.StartHour)
	assert.Equal(t, 0, result.StartMinute)
	assert.Equal(t, 23, result.EndHour)
	assert.Equal(t, 59, result.EndMinute)
}

func TestNewAbsence_FullDaySingleDate(t *testing.T) {
	a := validFullDayAbsence()
	a.EndDate = a.StartDate

	result, err := NewAbsence(a)

	require.NoError(t, err)
	assert.Equal(t, 0, result.StartHour)
	assert.Equal(t, 23, result.EndHour)
}

func TestNewAbsence_FullDayEndBeforeStart(t *testing.T) {
	a := validFullDayAbsence()
	a.EndDate = a.StartDate.AddDate(0, 0, -1)

	_, err := NewAbsence(a)
	assert.ErrorIs(t, err, ErrInvalidDateRangeForFullDay)
}

func TestNewAbsence_PartialDay(t *testing.T) {
	a := validFullDayAbsence()
	a.IsFullDate = false
	a.EndDate = a.StartDate
	a.StartHour, a.StartMinute = 9, 0
	a.EndHour, a.EndMinute = 12, 30

	result, err := NewAbsence(a)

	require.NoError(t, err)
	assert.Equal(t, 9, result.StartHour)
	assert.Equal(t, 12, result.EndHour)
}

func TestNewAbsence_PartialDayDateMismatch(t *testing.T) {
	a := validFullDayAbsence()
	a.IsFullDate = false
	a.StartHour, a.StartMinute = 9, 0
	a.EndHour, a.EndMinute = 12, 30

	_, err := NewAbsence(a)
	assert.ErrorIs(t, err, ErrPartialDayDateMismatch)
}

func TestNewAbsence_PartialDayEndMustBeAfterStart(t *testing.T) {
	a := validFullDayAbsence()
	a.IsFullDate = false
	a.EndDate = a.StartDate
	a.StartHour, a.StartMinute = 12, 0
	a.EndHour, a.EndMinute = 12, 0

	_, err := NewAbsence(a)
	assert.ErrorIs(t, err, ErrEndTimeNotAfterStartTime)
}

func TestNewAbsence_PartialDayInvalidTime(t *testing.T) {
	a := validFullDayAbsence()
	a.IsFullDate = false
	a.EndDate = a.StartDate
	a.StartHour = 24

	_, err := NewAbsence(a)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestNewAbsence_IdentityValidation(t *testing.T) {
	a := validFullDayAbsence()
	a.UserID = " "
	_, err := NewAbsence(a)
	assert.ErrorIs(t, err, ErrInvalidUserID)

	a = validFullDayAbsence()
	a.AbsenceTypeID = 0
	_, err = NewAbsence(a)
	assert.ErrorIs(t, err, ErrInvalidAbsenceTypeID)
}

func TestNewAbsence_Reason(t *testing.T) {
	blank := "   "
	a := validFullDayAbsence()
	a.Reason = &blank

	result, err := NewAbsence(a)
	require.NoError(t, err)
	assert.Nil(t, result.Reason)

	long := strings.Repeat("x", MaxReasonLength+1)
	a = validFullDayAbsence()
	a.Reason = &long
	_, err = NewAbsence(a)
	assert.ErrorIs(t, err, ErrReasonTooLong)
}

func TestNewAbsence_StatusDefaultsAndValidation(t *testing.T) {
	a := validFullDayAbsence()

	result, err := NewAbsence(a)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, result.StatusOfType)
	assert.Equal(t, StatusPending, result.StatusOfDates)
	assert.False(t, result.IsFullyConfirmed)

	a.StatusOfType = "rejected"
	_, err = NewAbsence(a)
	assert.ErrorIs(t, err, ErrInvalidConfirmationStatus)
}

func TestNewAbsence_DerivesFullyConfirmed(t *testing.T) {
	a := validFullDayAbsence()
	a.StatusOfType = StatusConfirmed
	a.StatusOfDates = StatusConfirmed

	result, err := NewAbsence(a)
	require.NoError(t, err)
	assert.True(t, result.IsFullyConfirmed)
}

func TestConfirm_AggregateFollowsBothStatuses(t *testing.T) {
	a, err := NewAbsence(validFullDayAbsence())
	require.NoError(t, err)

	a.ConfirmType()
	assert.Equal(t, StatusConfirmed, a.StatusOfType)
	assert.False(t, a.IsFullyConfirmed)

	a.ConfirmDates()
	assert.Equal(t, StatusConfirmed, a.StatusOfDates)
	assert.True(t, a.IsFullyConfirmed)
}
