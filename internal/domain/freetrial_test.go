package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingFreeTrialDays(t *testing.T) {
	started := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "full window left at start",
			now:  started,
			want: 7,
		},
		{
			name: "partial day rounds up",
			now:  started.Add(3*24*time.Hour + time.Hour),
			want: 4,
		},
		{
			name: "last second counts as one day",
			now:  started.Add(7*24*time.Hour - time.Second),
			want: 1,
		},
		{
			name: "exactly at expiry",
			now:  started.Add(7 * 24 * time.Hour),
			want: 0,
		},
		{
			name: "one second past expiry",
			now:  started.Add(7*24*time.Hour + time.Second),
			want: 0,
		},
		{
			name: "long past expiry never negative",
			now:  started.AddDate(0, 2, 0),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingFreeTrialDays(started, tt.now))
		})
	}
}

func TestFreeTrialExpired(t *testing.T) {
	started := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	assert.False(t, FreeTrialExpired(started, started.Add(6*24*time.Hour)))
	assert.True(t, FreeTrialExpired(started, started.Add(7*24*time.Hour)))
	assert.True(t, FreeTrialExpired(started, started.Add(8*24*time.Hour)))
}

func TestFreeTrialExpiry(t *testing.T) {
	started := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, started.AddDate(0, 0, 7), FreeTrialExpiry(started))
}
