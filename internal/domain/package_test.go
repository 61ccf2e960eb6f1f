package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPackageActiveOn(t *testing.T) {
	start := time.Date(2024, time.February, 10, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 20, 8, 0, 0, 0, time.UTC)
	pkg := Package{SubscriptionStartDate: &start, SubscriptionEndDate: &end}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{
			name: "day before start",
			day:  time.Date(2024, time.February, 9, 23, 59, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "start day inclusive even before start clock time",
			day:  time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "middle of range",
			day:  time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "end day inclusive even after end clock time",
			day:  time.Date(2024, time.February, 20, 23, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "day after end",
			day:  time.Date(2024, time.February, 21, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkg.ActiveOn(tt.day))
		})
	}
}

func TestPackageActiveOnWithoutPeriod(t *testing.T) {
	start := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	noDates := Package{}
	assert.False(t, noDates.ActiveOn(start))

	onlyStart := Package{SubscriptionStartDate: &start}
	assert.False(t, onlyStart.ActiveOn(start))
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2024, time.February, 10, 15, 30, 45, 123, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), DayOf(ts))
}
