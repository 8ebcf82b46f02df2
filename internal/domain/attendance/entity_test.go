package attendance

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func validOpenAttendance() Attendance {
	return Attendance{
		CardID:      1,
		UserID:      "user-1",
		CompanyID:   1,
		StartDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartHour:   8,
		StartMinute: 30,
	}
}

func TestNewAttendance_ValidOpen(t *testing.T) {
	att, err := NewAttendance(validOpenAttendance(), testNow)

	require.NoError(t, err)
	assert.True(t, att.IsOpen())
	assert.Nil(t, att.EndDateTime())
}

func TestNewAttendance_ValidClosed(t *testing.T) {
	att := validOpenAttendance()
	endDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	att.EndDate = &endDate
	att.EndHour = 11
	att.EndMinute = 45

	result, err := NewAttendance(att, testNow)

	require.NoError(t, err)
	assert.False(t, result.IsOpen())
	require.NotNil(t, result.EndDateTime())
	assert.Equal(t, time.Date(2025, 6, 10, 11, 45, 0, 0, time.UTC), *result.EndDateTime())
}

func TestNewAttendance_IdentityValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Attendance)
		wantErr error
	}{
		{"zero card id", func(a *Attendance) { a.CardID = 0 }, ErrInvalidCardID},
		{"blank user id", func(a *Attendance) { a.UserID = "   " }, ErrInvalidUserID},
		{"zero company id", func(a *Attendance) { a.CompanyID = 0 }, ErrInvalidCompanyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := validOpenAttendance()
			tt.mutate(&att)

			_, err := NewAttendance(att, testNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAttendance_InvalidStartTime(t *testing.T) {
	att := validOpenAttendance()
	att.StartHour = 24

	_, err := NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrInvalidStartTime)
}

func TestNewAttendance_StartInFuture(t *testing.T) {
	att := validOpenAttendance()
	att.StartHour = 12
	att.StartMinute = 1

	_, err := NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrStartTimeInFuture)
}

func TestNewAttendance_EndDateBeforeStartDate(t *testing.T) {
	att := validOpenAttendance()
	endDate := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	att.EndDate = &endDate
	att.EndHour = 10

	_, err := NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrInvalidEndDate)
}

func TestNewAttendance_EndEqualsStart(t *testing.T) {
	att := validOpenAttendance()
	endDate := att.StartDate
	att.EndDate = &endDate
	att.EndHour = att.StartHour
	att.EndMinute = att.StartMinute

	_, err := NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrEndTimeNotAfterStartTime)
}

func TestNewAttendance_EndInFuture(t *testing.T) {
	att := validOpenAttendance()
	endDate := att.StartDate
	att.EndDate = &endDate
	att.EndHour = 12
	att.EndMinute = 1

	_, err := NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrEndTimeInFuture)
}

func TestNewAttendance_ResolvedPairMustMatch(t *testing.T) {
	resolvedAt := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	adminID := "admin-1"

	att := validOpenAttendance()
	att.ResolvedAt = &resolvedAt
	_, err := NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrInvalidResolvedPair)

	att = validOpenAttendance()
	att.ResolvedByID = &adminID
	_, err = NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrInvalidResolvedPair)

	att = validOpenAttendance()
	att.ResolvedAt = &resolvedAt
	att.ResolvedByID = &adminID
	_, err = NewAttendance(att, testNow)
	assert.NoError(t, err)
}

func TestNewAttendance_ReasonClearedWhenNotFlagged(t *testing.T) {
	reason := "stale flag"
	att := validOpenAttendance()
	att.IsStrangeActivity = false
	att.StrangeActivityReason = &reason

	result, err := NewAttendance(att, testNow)

	require.NoError(t, err)
	assert.Nil(t, result.StrangeActivityReason)
}

func TestNewAttendance_ReasonTooLong(t *testing.T) {
	reason := strings.Repeat("x", MaxStrangeActivityReasonLength+1)
	att := validOpenAttendance()
	att.IsStrangeActivity = true
	att.StrangeActivityReason = &reason

	_, err := NewAttendance(att, testNow)
	assert.ErrorIs(t, err, ErrStrangeActivityReasonTooLong)
}

func TestNewAttendance_BlankReasonNormalizedToNil(t *testing.T) {
	reason := "   "
	att := validOpenAttendance()
	att.IsStrangeActivity = true
	att.StrangeActivityReason = &reason

	result, err := NewAttendance(att, testNow)

	require.NoError(t, err)
	assert.True(t, result.IsStrangeActivity)
	assert.Nil(t, result.StrangeActivityReason)
}
