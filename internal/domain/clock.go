package domain

import "time"

// Clock is the single source of "now" for due-date and interest math.
type Clock interface {
	Now() time.Time
	// Today returns midnight of the current day in the clock's location.
	Today() time.Time
	Location() *time.Location
}
