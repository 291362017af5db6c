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
		{"valid morning", "09:30", false},
		{"valid midnight", "00:00", false},
		{"valid last minute", "23:59", false},
		{"missing leading zero", "9:30", true},
		{"out of range hour", "24:00", true},
		{"out of range minutes", "12:60", true},
		{"empty string", "", true},
		{"garbage", "abcde", true},
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

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		value TimeString
		want  int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"09:30", 570},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			got, err := tt.value.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TimeString("25:00").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), got)

	// Переход через полночь заворачивается
	got, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), got)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("09:59").IsAfter("10:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 15, 18, 45, 59, 0, time.UTC)
	assert.Equal(t, TimeString("18:45"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), ts)

	_, err = NewTimeStringFromString("14:65")
	assert.Error(t, err)
}
