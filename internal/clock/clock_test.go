package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMockClock(base)

	assert.Equal(t, base, c.Now())

	c.Advance(10 * time.Second)
	assert.Equal(t, base.Add(10*time.Second), c.Now())
	assert.Equal(t, 10*time.Second, c.Since(base))

	c.Set(base)
	assert.Equal(t, base, c.Now())
}

func TestMockClock_SleepAdvancesWithoutBlocking(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMockClock(base)

	start := time.Now()
	c.Sleep(10 * time.Second)
	c.Sleep(5 * time.Second)
	assert.Less(t, time.Since(start), time.Second)

	assert.Equal(t, base.Add(15*time.Second), c.Now())
	assert.Equal(t, []time.Duration{10 * time.Second, 5 * time.Second}, c.Slept())
}

func TestRealClock(t *testing.T) {
	c := &RealClock{}
	before := time.Now()
	now := c.Now()
	assert.False(t, now.Before(before))
	assert.GreaterOrEqual(t, c.Since(before), time.Duration(0))
}
