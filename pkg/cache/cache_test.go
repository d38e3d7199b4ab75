package cache

import (
	"context"
	"testing"
	"time"

	"capstore/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestGetSlidesExpiry(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := newWithClock(logger.NewNop(), clk.now)

	c.Set("a", 1, time.Minute)

	clk.t = clk.t.Add(50 * time.Second)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	clk.t = clk.t.Add(50 * time.Second)
	_, ok = c.Get("a")
	assert.True(t, ok, "expiry should have moved with the previous read")

	clk.t = clk.t.Add(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestSweepReturnsExpiredValues(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := newWithClock(logger.NewNop(), clk.now)

	c.Set("short", "s", time.Second)
	c.Set("long", "l", time.Hour)
	c.Set("forever", "f", 0)

	clk.t = clk.t.Add(time.Minute)
	expired := c.Sweep(context.Background())

	assert.Equal(t, []interface{}{"s"}, expired)
	assert.Equal(t, 2, c.Len())
}

func TestDelete(t *testing.T) {
	c := newWithClock(logger.NewNop(), time.Now)
	c.Set("a", 1, time.Minute)

	v, ok := c.Delete("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Delete("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}
