package get_price_quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

type fakeSettingsRepo struct {
	rates *domain.BaseRates
	err   error
}

func (f *fakeSettingsRepo) GetBaseRates(_ context.Context) (*domain.BaseRates, error) {
	return f.rates, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_SingleHourWithoutDiscount(t *testing.T) {
	uc := NewUseCase(&fakeSettingsRepo{rates: &domain.BaseRates{PerHour: 30, PerPerson: 5}}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{GroupSize: 4, DurationHours: 1})

	require.NoError(t, err)
	assert.Equal(t, 50.0, resp.BaseHourlyPrice)
	assert.Equal(t, 50.0, resp.TotalPrice)
	assert.Equal(t, 0.0, resp.DiscountAmount)
	assert.Equal(t, 0, resp.DiscountPercent)
}

func TestExecute_AdditionalHoursDiscounted(t *testing.T) {
	uc := NewUseCase(&fakeSettingsRepo{rates: &domain.BaseRates{PerHour: 30, PerPerson: 5}}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{GroupSize: 4, DurationHours: 3})

	require.NoError(t, err)
	// 50 + 45 + 45 = 140, скидка 10 от полных 150
	assert.Equal(t, 140.0, resp.TotalPrice)
	assert.Equal(t, 10.0, resp.DiscountAmount)
	assert.Equal(t, 10, resp.DiscountPercent)
}

func TestExecute_RatesErrorFallsBackToDefaults(t *testing.T) {
	uc := NewUseCase(&fakeSettingsRepo{err: errors.New("connection refused")}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{GroupSize: 4, DurationHours: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPerHourRate+4*domain.DefaultPerPersonRate, resp.TotalPrice)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSettingsRepo{rates: &domain.BaseRates{PerHour: 30, PerPerson: 5}}, noopLogger{})

	tests := []struct {
		name string
		req  Request
	}{
		{name: "нулевая группа", req: Request{GroupSize: 0, DurationHours: 1}},
		{name: "слишком большая группа", req: Request{GroupSize: 16, DurationHours: 1}},
		{name: "нулевая длительность", req: Request{GroupSize: 4, DurationHours: 0}},
		{name: "длительность сверх лимита", req: Request{GroupSize: 4, DurationHours: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
