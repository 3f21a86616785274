package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

func TestBooking_IsActive(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name    string
		booking Booking
		active  bool
	}{
		{"pending", Booking{Status: StatusPending}, true},
		{"confirmed", Booking{Status: StatusConfirmed}, true},
		{"cancelled", Booking{Status: StatusCancelled}, false},
		{"soft-deleted pending", Booking{Status: StatusPending, DeletedAt: &now}, false},
		{"soft-deleted confirmed", Booking{Status: StatusConfirmed, DeletedAt: &now}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, tc.booking.IsActive())
		})
	}
}

func TestBooking_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			b := Booking{Status: tc.from}
			assert.Equal(t, tc.allowed, b.CanTransitionTo(tc.to))
		})
	}
}

func TestBooking_EndHour(t *testing.T) {
	b := Booking{TimeSlot: "14:00", DurationHours: 2}
	assert.Equal(t, 16, b.EndHour())
}

func TestBookingSettings_HoursForDay(t *testing.T) {
	settings := BookingSettings{
		OpeningHours: map[string]DayHours{
			"5": {IsOpen: true, Slots: []types.TimeString{"17:00", "18:00", "19:00"}},
		},
	}

	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, settings.HoursForDay(friday).IsOpen)
	assert.Len(t, settings.HoursForDay(friday).Slots, 3)
	assert.False(t, settings.HoursForDay(saturday).IsOpen)
}

func TestBookingSettings_IsDateExcluded(t *testing.T) {
	settings := BookingSettings{
		ExcludedDates: []string{"2026-12-25", "2027-01-01"},
	}

	christmas := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	regular := time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC)

	assert.True(t, settings.IsDateExcluded(christmas))
	assert.False(t, settings.IsDateExcluded(regular))
}
