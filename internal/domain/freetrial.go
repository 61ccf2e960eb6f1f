package domain

import (
	"math"
	"time"
)

// FreeTrialWindow is the length of a customer's free trial, counted from
// the day the trial package was created. Expiry is always derived from
// this constant, never stored.
const FreeTrialWindow = 7 * 24 * time.Hour

// FreeTrialExpiry returns the instant the trial that started at the given
// time runs out.
func FreeTrialExpiry(started time.Time) time.Time {
	return started.Add(FreeTrialWindow)
}

// RemainingFreeTrialDays returns how many whole or partial days of the
// trial are left at now, never negative. A trial one second past its
// window reports zero.
func RemainingFreeTrialDays(started, now time.Time) int {
	remaining := FreeTrialExpiry(started).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// FreeTrialExpired reports whether the trial window has fully elapsed.
func FreeTrialExpired(started, now time.Time) bool {
	return RemainingFreeTrialDays(started, now) == 0
}
