// Package clock provides the deployment clock: "now" and "today" in one
// configured timezone.
package clock

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

type ZonedClock struct {
	loc *time.Location
	now func() time.Time
}

func New(timezone string) (*ZonedClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &ZonedClock{loc: loc, now: time.Now}, nil
}

func (c *ZonedClock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *ZonedClock) Today() time.Time {
	return startOfDay(c.Now())
}

func (c *ZonedClock) Location() *time.Location {
	return c.loc
}

// Fixed is a manually advanced clock.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fixed) Today() time.Time {
	return startOfDay(f.Now())
}

func (f *Fixed) Location() *time.Location {
	return f.Now().Location()
}

func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	f.now = now
	f.mu.Unlock()
}

func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// AdvanceDays moves the clock by whole calendar days.
func (f *Fixed) AdvanceDays(days int) {
	f.mu.Lock()
	f.now = f.now.AddDate(0, 0, days)
	f.mu.Unlock()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
