package get_excluded_days

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

func weekdaySettings() *domain.BookingSettings {
	slots := []types.TimeString{"14:00", "15:00", "16:00"}
	return &domain.BookingSettings{
		OpeningHours: map[string]domain.DayHours{
			"1": {IsOpen: true, Slots: slots},
			"2": {IsOpen: true, Slots: slots},
			"3": {IsOpen: true, Slots: slots},
			"4": {IsOpen: true, Slots: slots},
			"5": {IsOpen: true, Slots: slots},
		},
		BookingWindow: domain.BookingWindow{StartDays: 1, EndDays: 30},
		ExcludedDates: []string{"2026-09-09"},
	}
}

func newTestUseCase(settings *fakeSettingsRepo, now time.Time) *UseCase {
	uc := NewUseCase(settings, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_WeekendsAndExcludedDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) // вторник
	uc := newTestUseCase(&fakeSettingsRepo{settings: weekdaySettings()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),  // пятница
		EndDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), // четверг
	})

	require.NoError(t, err)
	// Суббота, воскресенье и исключенная среда 09-09
	assert.Equal(t, []string{"2026-09-05", "2026-09-06", "2026-09-09"}, resp.Days)
}

func TestExecute_DaysOutsideWindowExcluded(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSettingsRepo{settings: weekdaySettings()}, now)

	// Начало диапазона раньше открытия окна бронирования
	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Days, "2026-09-01")
	assert.NotContains(t, resp.Days, "2026-09-02")
}

func TestExecute_SettingsErrorClosesRange(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSettingsRepo{err: errors.New("connection refused")}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-04", "2026-09-05", "2026-09-06"}, resp.Days)
}

func TestExecute_TestModeOpensEverything(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	settings := weekdaySettings()
	settings.IsTestMode = true
	uc := newTestUseCase(&fakeSettingsRepo{settings: settings}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeSettingsRepo{settings: weekdaySettings()}, time.Now())

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "пустые даты",
			req:  Request{},
		},
		{
			name: "конец раньше начала",
			req: Request{
				StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "слишком длинный диапазон",
			req: Request{
				StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
