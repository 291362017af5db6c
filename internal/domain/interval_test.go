package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name      string
		start     types.TimeString
		end       types.TimeString
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"regular slot", "09:00", "10:30", 540, 630, false},
		{"full day", "00:00", "00:00", 0, MinutesPerDay, false},
		{"until midnight", "23:00", "00:00", 1380, MinutesPerDay, false},
		{"empty interval", "10:00", "10:00", 0, 0, true},
		{"inverted interval", "12:00", "10:00", 0, 0, true},
		{"invalid start", "25:00", "10:00", 0, 0, true},
		{"invalid end", "10:00", "10:75", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInterval(tt.start, tt.end)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	mustInterval := func(start, end types.TimeString) Interval {
		i, err := NewInterval(start, end)
		require.NoError(t, err)
		return i
	}

	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{"identical", mustInterval("10:00", "11:00"), mustInterval("10:00", "11:00"), true},
		{"partial overlap", mustInterval("10:00", "11:00"), mustInterval("10:30", "11:30"), true},
		{"containment", mustInterval("09:00", "12:00"), mustInterval("10:00", "11:00"), true},
		{"touching boundaries", mustInterval("10:00", "11:00"), mustInterval("11:00", "12:00"), false},
		{"disjoint", mustInterval("08:00", "09:00"), mustInterval("11:00", "12:00"), false},
		{"late slot vs midnight slot", mustInterval("23:00", "00:00"), mustInterval("23:30", "00:00"), true},
		{"evening before midnight slot", mustInterval("21:00", "23:00"), mustInterval("23:00", "00:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_DurationMinutes(t *testing.T) {
	i, err := NewInterval("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, i.DurationMinutes())

	full, err := NewInterval("00:00", "00:00")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, full.DurationMinutes())
}
