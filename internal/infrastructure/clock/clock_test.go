package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonedClock(t *testing.T) {
	c, err := New("Asia/Bangkok")
	require.NoError(t, err)

	// 20:00 UTC is already the next day in Bangkok.
	c.now = func() time.Time { return time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, "Asia/Bangkok", c.Location().String())
	assert.Equal(t, 3, c.Now().Hour())
	today := c.Today()
	assert.Equal(t, 2, today.Day())
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, c.Location(), today.Location())
}

func TestNew_UnknownTimezone(t *testing.T) {
	_, err := New("Mars/Olympus")
	assert.Error(t, err)
}

func TestFixed(t *testing.T) {
	start := time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)
	f := NewFixed(start)

	assert.Equal(t, start, f.Now())
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), f.Today())

	f.AdvanceDays(31)
	assert.Equal(t, time.April, f.Now().Month())
	f.Advance(time.Hour)
	assert.Equal(t, 16, f.Now().Hour())
}
