package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		wantErr bool
	}{
		{name: "валидное время", value: "14:00", wantErr: false},
		{name: "полночь", value: "00:00", wantErr: false},
		{name: "последний час", value: "23:30", wantErr: false},
		{name: "час вне диапазона", value: "25:00", wantErr: true},
		{name: "минуты вне диапазона", value: "14:75", wantErr: true},
		{name: "без ведущего нуля", value: "9:00", wantErr: true},
		{name: "пустая строка", value: "", wantErr: true},
		{name: "мусор", value: "abcd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_Hour(t *testing.T) {
	assert.Equal(t, 14, TimeString("14:00").Hour())
	assert.Equal(t, 0, TimeString("00:30").Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
}

func TestTimeString_AddHours(t *testing.T) {
	result, err := TimeString("14:00").AddHours(3)
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:00"), result)

	// 24:00 допускается как граница интервала
	boundary, err := TimeString("22:00").AddHours(2)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), boundary)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:00").AddHours(2)
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("14:00").IsBefore("15:00"))
	assert.False(t, TimeString("15:00").IsBefore("15:00"))
	assert.True(t, TimeString("16:00").IsAfter("15:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var fromString TimeString
	require.NoError(t, fromString.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), fromString)

	// Postgres time without time zone возвращает секунды
	var withSeconds TimeString
	require.NoError(t, withSeconds.Scan("14:00:00"))
	assert.Equal(t, TimeString("14:00"), withSeconds)

	var fromTime TimeString
	require.NoError(t, fromTime.Scan(time.Date(2026, 9, 4, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:30"), fromTime)

	var fromNil TimeString
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())

	var invalid TimeString
	assert.Error(t, invalid.Scan(42))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("19:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:00"), ts)

	_, err = NewTimeStringFromString("19-00")
	assert.Error(t, err)
}
