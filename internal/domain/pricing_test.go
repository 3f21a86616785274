package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuote_SingleHour(t *testing.T) {
	rates := BaseRates{PerHour: 30, PerPerson: 5}

	quote, err := CalculateQuote(4, 1, rates)
	require.NoError(t, err)

	assert.Equal(t, 50.0, quote.BaseHourlyPrice)
	assert.Equal(t, 50.0, quote.TotalPrice)
	assert.Equal(t, 0.0, quote.DiscountAmount)
	assert.Equal(t, 0, quote.DiscountPercent)
}

func TestCalculateQuote_MultiHourDiscount(t *testing.T) {
	rates := BaseRates{PerHour: 30, PerPerson: 5}

	// baseHourly = 50, итог = 50 + 45*2 = 140, скидка = 5*2 = 10
	quote, err := CalculateQuote(4, 3, rates)
	require.NoError(t, err)

	assert.Equal(t, 50.0, quote.BaseHourlyPrice)
	assert.Equal(t, 140.0, quote.TotalPrice)
	assert.Equal(t, 10.0, quote.DiscountAmount)
	assert.Equal(t, 10, quote.DiscountPercent)
}

func TestCalculateQuote_RoundingOnAggregate(t *testing.T) {
	// baseHourly = 33.5, итог = 33.5 + 30.15*3 = 123.95 -> 124
	// Скидка = 3.35*3 = 10.05 -> 10
	rates := BaseRates{PerHour: 26, PerPerson: 2.5}

	quote, err := CalculateQuote(3, 4, rates)
	require.NoError(t, err)

	assert.Equal(t, 124.0, quote.TotalPrice)
	assert.Equal(t, 10.0, quote.DiscountAmount)
}

func TestCalculateQuote_InvalidInput(t *testing.T) {
	rates := BaseRates{PerHour: 30, PerPerson: 5}

	testCases := []struct {
		name     string
		group    int
		duration int
	}{
		{"zero group size", 0, 2},
		{"negative group size", -1, 2},
		{"zero duration", 4, 0},
		{"negative duration", 4, -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := CalculateQuote(tc.group, tc.duration, rates)
			assert.ErrorIs(t, err, ErrInvalidQuoteInput)
			assert.Nil(t, quote)
		})
	}
}

func TestCalculateQuote_Deterministic(t *testing.T) {
	rates := BaseRates{PerHour: 30, PerPerson: 5}

	first, err := CalculateQuote(6, 4, rates)
	require.NoError(t, err)
	second, err := CalculateQuote(6, 4, rates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
