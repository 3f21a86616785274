package get_available_slots

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
	calls    int
}

func (f *fakeBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	f.calls++
	return f.bookings, f.err
}

type fakeSettingsRepo struct {
	settings *domain.BookingSettings
	err      error
}

func (f *fakeSettingsRepo) GetBookingSettings(_ context.Context) (*domain.BookingSettings, error) {
	return f.settings, f.err
}

type fakeCache struct {
	slots  []types.TimeString
	getErr error
	set    []types.TimeString
}

func (f *fakeCache) GetSlots(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slots, nil
}

func (f *fakeCache) SetSlots(_ context.Context, _ time.Time, slots []types.TimeString) error {
	f.set = slots
	return nil
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

func openFridaySettings() *domain.BookingSettings {
	return &domain.BookingSettings{
		OpeningHours: map[string]domain.DayHours{
			"5": {
				IsOpen: true,
				Slots:  []types.TimeString{"14:00", "15:00", "16:00", "17:00"},
			},
		},
		BookingWindow: domain.BookingWindow{StartDays: 1, EndDays: 30},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, settings *fakeSettingsRepo, cache AvailabilityCache, now time.Time) *UseCase {
	uc := NewUseCase(bookings, settings, cache, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_FiltersOccupiedSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC) // пятница

	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{TimeSlot: "14:00", DurationHours: 2, Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeSettingsRepo{settings: openFridaySettings()}, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"16:00", "17:00"}, resp.Slots)
	assert.False(t, resp.IsTestMode)
}

func TestExecute_ExcludedDayReturnsEmptySlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeSettingsRepo{settings: openFridaySettings()}, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	// До бронирований дело не доходит
	assert.Zero(t, bookingRepo.calls)
}

func TestExecute_SettingsErrorClosesDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeSettingsRepo{err: errors.New("connection refused")},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookingReadFailureReturnsUnfilteredSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeSettingsRepo{settings: openFridaySettings()},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00", "15:00", "16:00", "17:00"}, resp.Slots)
}

func TestExecute_CacheHitSkipsRepositories(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	bookingRepo := &fakeBookingRepo{}
	cache := &fakeCache{slots: []types.TimeString{"15:00"}}
	uc := newTestUseCase(bookingRepo, &fakeSettingsRepo{settings: openFridaySettings()}, cache, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"15:00"}, resp.Slots)
	assert.Zero(t, bookingRepo.calls)
}

func TestExecute_CacheMissComputesAndStores(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	cache := &fakeCache{getErr: errors.New("cache: key not found")}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: openFridaySettings()}, cache, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00", "15:00", "16:00", "17:00"}, resp.Slots)
	assert.Equal(t, resp.Slots, cache.set)
}

func TestExecute_TestModeUsesFixedSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	settings := openFridaySettings()
	settings.IsTestMode = true

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.Equal(t, domain.TestModeSlots, resp.Slots)
	assert.True(t, resp.IsTestMode)
}

func TestExecute_TestModeIgnoresBookingsAndCache(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	settings := openFridaySettings()
	settings.IsTestMode = true

	// Занятый слот и кэшированная выдача не должны влиять на песочницу
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{TimeSlot: "14:00", DurationHours: 2, Status: domain.StatusConfirmed},
		},
	}
	cache := &fakeCache{slots: []types.TimeString{"15:00"}}
	uc := newTestUseCase(bookingRepo, &fakeSettingsRepo{settings: settings}, cache, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.Equal(t, domain.TestModeSlots, resp.Slots)
	assert.True(t, resp.IsTestMode)
	assert.Zero(t, bookingRepo.calls)
	assert.Nil(t, cache.set)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{}, nil, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
