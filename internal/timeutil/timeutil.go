// Package timeutil provides utility functions for displaying times and
// durations.
package timeutil

import (
	"fmt"
	"time"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// Countdown formats a number of seconds as MM:SS, or H:MM:SS from one hour
// up. Negative values are shown as zero.
func Countdown(seconds int) string {
	seconds = max(seconds, 0)

	hrs := seconds / secondsInAnHour
	mins := seconds % secondsInAnHour / secondsInAMinute
	secs := seconds % secondsInAMinute

	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// Clock formats t as a wall clock time.
func Clock(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format("15:04:05")
	}

	return t.Format("03:04:05 PM")
}

// EndTime returns when a countdown of the given seconds finishes if started
// at now.
func EndTime(now time.Time, seconds int) time.Time {
	return now.Add(time.Duration(seconds) * time.Second)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}
