// Package warranty derives the warranty state of a piece of equipment from
// its expiration date.
package warranty

import "time"

// Status is the derived warranty classification
type Status string

const (
	StatusNone         Status = "none"
	StatusValid        Status = "valid"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// ExpiringSoonDays is the window, in days, before expiration during which a
// warranty is reported as expiring soon.
const ExpiringSoonDays = 30

// Result holds the derived warranty fields
type Result struct {
	Status   Status
	DaysLeft int
}

// IsValid checks if the Status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusValid, StatusExpiringSoon, StatusExpired:
		return true
	}
	return false
}

// Compute classifies an expiration date relative to today. Both values are
// reduced to calendar dates first, so the time of day never matters.
// DaysLeft is negative once the warranty has expired.
func Compute(expiration *time.Time, today time.Time) Result {
	if expiration == nil || expiration.IsZero() {
		return Result{Status: StatusNone, DaysLeft: 0}
	}

	days := DaysBetween(today, *expiration)
	switch {
	case days < 0:
		return Result{Status: StatusExpired, DaysLeft: days}
	case days < ExpiringSoonDays:
		return Result{Status: StatusExpiringSoon, DaysLeft: days}
	default:
		return Result{Status: StatusValid, DaysLeft: days}
	}
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	da := dateOf(a)
	db := dateOf(b)
	return int(db.Sub(da).Hours() / 24)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
