package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/KaraBox-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/KaraBox-BookingService/internal/service/settings/models"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

type fakeRepo struct {
	settings      *domain.BookingSettings
	rates         *domain.BaseRates
	settingsErr   error
	ratesErr      error
	savedSettings *domain.BookingSettings
	savedRates    *domain.BaseRates
}

func (f *fakeRepo) GetBookingSettings(_ context.Context) (*domain.BookingSettings, error) {
	return f.settings, f.settingsErr
}

func (f *fakeRepo) UpsertBookingSettings(_ context.Context, settings *domain.BookingSettings) error {
	f.savedSettings = settings
	return nil
}

func (f *fakeRepo) GetBaseRates(_ context.Context) (*domain.BaseRates, error) {
	return f.rates, f.ratesErr
}

func (f *fakeRepo) UpsertBaseRates(_ context.Context, rates *domain.BaseRates) error {
	f.savedRates = rates
	return nil
}

type fakeCache struct {
	invalidations int
}

func (f *fakeCache) InvalidateAll(_ context.Context) error {
	f.invalidations++
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		OpeningHours: map[string]models.DayHoursPayload{
			"5": {IsOpen: true, Slots: []types.TimeString{"14:00", "15:00", "16:00"}},
			"6": {IsOpen: false},
		},
		BookingWindow: models.BookingWindowPayload{StartDays: 1, EndDays: 30},
		ExcludedDates: []string{"2026-12-31"},
		Rates:         models.RatesPayload{PerHour: 30, PerPerson: 5},
	}
}

func TestGet_MissingSettingsReturnDefaults(t *testing.T) {
	repo := &fakeRepo{
		settingsErr: settingsRepo.ErrSettingsNotFound,
		ratesErr:    settingsRepo.ErrSettingsNotFound,
	}
	svc := NewService(repo, nil, noopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.OpeningHours)
	assert.Equal(t, domain.DefaultWindowStartDays, resp.BookingWindow.StartDays)
	assert.Equal(t, domain.DefaultPerHourRate, resp.Rates.PerHour)
}

func TestUpdate_SavesSettingsAndRates(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, noopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())

	require.NoError(t, err)
	require.NotNil(t, repo.savedSettings)
	require.NotNil(t, repo.savedRates)
	assert.True(t, repo.savedSettings.OpeningHours["5"].IsOpen)
	assert.Equal(t, 30.0, repo.savedRates.PerHour)
	assert.Equal(t, []string{"2026-12-31"}, resp.ExcludedDates)
}

func TestUpdate_InvalidatesAvailabilityCache(t *testing.T) {
	cache := &fakeCache{}
	svc := NewService(&fakeRepo{}, cache, noopLogger{})

	_, err := svc.Update(context.Background(), validUpdateRequest())

	require.NoError(t, err)
	// Старая выдача могла считаться по другому расписанию
	assert.Equal(t, 1, cache.invalidations)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.UpdateSettingsRequest)
	}{
		{
			name:   "пустое расписание",
			mutate: func(r *models.UpdateSettingsRequest) { r.OpeningHours = nil },
		},
		{
			name: "неизвестный ключ дня",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.OpeningHours["7"] = models.DayHoursPayload{IsOpen: false}
			},
		},
		{
			name: "открытый день без слотов",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.OpeningHours["5"] = models.DayHoursPayload{IsOpen: true}
			},
		},
		{
			name: "слоты с разрывом",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.OpeningHours["5"] = models.DayHoursPayload{
					IsOpen: true,
					Slots:  []types.TimeString{"14:00", "16:00"},
				}
			},
		},
		{
			name: "слот не на границе часа",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.OpeningHours["5"] = models.DayHoursPayload{
					IsOpen: true,
					Slots:  []types.TimeString{"14:30", "15:30"},
				}
			},
		},
		{
			name: "конец окна не позже начала",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.BookingWindow = models.BookingWindowPayload{StartDays: 5, EndDays: 5}
			},
		},
		{
			name: "кривая исключенная дата",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.ExcludedDates = []string{"31-12-2026"}
			},
		},
		{
			name: "нулевой тариф за час",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.Rates.PerHour = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
