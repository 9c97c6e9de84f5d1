package services

import (
	"time"

	"gym-tracker/models"
)

// Clock returns the current time in the user's timezone
type Clock func() time.Time

// LocalClock is a Clock for loc. Log dates follow the user's calendar day.
func LocalClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Today is the current date as YYYY-MM-DD
func (c Clock) Today() string {
	return c().Format(models.DateLayout)
}

// Month is the current month as YYYY-MM
func (c Clock) Month() string {
	return c().Format(models.MonthLayout)
}
