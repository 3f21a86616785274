package get_max_duration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeSettingsRepo struct {
	settings *domain.BookingSettings
	err      error
}

func (f *fakeSettingsRepo) GetBookingSettings(_ context.Context) (*domain.BookingSettings, error) {
	return f.settings, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func fridaySettings() *domain.BookingSettings {
	return &domain.BookingSettings{
		OpeningHours: map[string]domain.DayHours{
			"5": {
				IsOpen: true,
				Slots: []types.TimeString{
					"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
				},
			},
		},
		BookingWindow: domain.BookingWindow{StartDays: 1, EndDays: 30},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, settings *fakeSettingsRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, settings, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_MaxDuration(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		slot     types.TimeString
		bookings []*domain.Booking
		expected int
	}{
		{
			name:     "свободный день ограничен бизнес-лимитом",
			date:     friday,
			slot:     "14:00",
			expected: 4,
		},
		{
			name:     "последний слот дает один час",
			date:     friday,
			slot:     "22:00",
			expected: 1,
		},
		{
			name: "позднее бронирование обрезает длительность",
			date: friday,
			slot: "14:00",
			bookings: []*domain.Booking{
				{TimeSlot: "16:00", DurationHours: 2, Status: domain.StatusConfirmed},
			},
			expected: 2,
		},
		{
			name:     "слот вне расписания дает ноль",
			date:     friday,
			slot:     "10:00",
			expected: 0,
		},
		{
			name:     "закрытый день дает ноль",
			date:     saturday,
			slot:     "14:00",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&fakeBookingRepo{bookings: tt.bookings},
				&fakeSettingsRepo{settings: fridaySettings()},
				now,
			)

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date, Slot: tt.slot})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.MaxDuration)
		})
	}
}

func TestExecute_TestModeIgnoresOccupancy(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	settings := fridaySettings()
	settings.IsTestMode = true

	// Бронирования и положение слота в расписании не ограничивают песочницу
	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{TimeSlot: "15:00", DurationHours: 2, Status: domain.StatusConfirmed},
		}},
		&fakeSettingsRepo{settings: settings},
		now,
	)

	for _, slot := range []types.TimeString{"14:00", "22:00"} {
		resp, err := uc.Execute(context.Background(), &Request{Date: saturday, Slot: slot})

		require.NoError(t, err)
		assert.Equal(t, domain.MaxBookingDurationHours, resp.MaxDuration)
	}
}

func TestExecute_SettingsErrorGivesZero(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeSettingsRepo{err: errors.New("connection refused")},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Slot: "14:00",
	})

	require.NoError(t, err)
	assert.Zero(t, resp.MaxDuration)
}

func TestExecute_BookingReadFailureIgnoresOccupancy(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeSettingsRepo{settings: fridaySettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Slot: "14:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.MaxDuration)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Slot: "14:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
