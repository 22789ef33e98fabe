package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_FiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFake(start)

	var fired []string
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "c") })

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now())

	c.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, fired, "ties fire in registration order")
	assert.Equal(t, 0, c.Pending())
}

func TestFake_CallbackSeesItsDeadline(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFake(start)

	var seen time.Time
	c.AfterFunc(3*time.Second, func() { seen = c.Now() })
	c.Advance(10 * time.Second)

	assert.Equal(t, start.Add(3*time.Second), seen)
	assert.Equal(t, start.Add(10*time.Second), c.Now())
}

func TestFake_RearmFromCallback(t *testing.T) {
	c := NewFake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	count := 0
	var tick func()
	tick = func() {
		count++
		c.AfterFunc(time.Second, tick)
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(5 * time.Second)
	assert.Equal(t, 5, count)
	assert.Equal(t, 1, c.Pending())
}

func TestFake_Stop(t *testing.T) {
	c := NewFake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing pending")

	c.Advance(time.Minute)
	assert.False(t, fired)
}
