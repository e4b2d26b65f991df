package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFake_AdvanceFiresDueTimersInOrder(t *testing.T) {
	c := NewFake(epoch)
	var order []int

	c.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	c.AfterFunc(1*time.Second, func() { order = append(order, 1) })
	c.AfterFunc(2*time.Second, func() { order = append(order, 2) })
	c.AfterFunc(10*time.Second, func() { order = append(order, 10) })

	c.Advance(5 * time.Second)

	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, epoch.Add(5*time.Second), c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestFake_NowInsideCallbackIsDueTime(t *testing.T) {
	c := NewFake(epoch)
	var seen time.Time
	c.AfterFunc(2*time.Second, func() { seen = c.Now() })

	c.Advance(time.Minute)

	assert.Equal(t, epoch.Add(2*time.Second), seen)
}

func TestFake_StopPreventsFire(t *testing.T) {
	c := NewFake(epoch)
	var fired atomic.Bool
	tm := c.AfterFunc(time.Second, func() { fired.Store(true) })

	require.True(t, tm.Stop())
	assert.False(t, tm.Stop(), "second Stop reports already stopped")

	c.Advance(time.Hour)
	assert.False(t, fired.Load())
	assert.Zero(t, c.Pending())
}

func TestFake_TimerArmedFromCallbackFiresInSameAdvance(t *testing.T) {
	c := NewFake(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		c.AfterFunc(time.Second, tick)
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(3 * time.Second)

	assert.Equal(t, 3, count)
}

func TestFake_SetBackwardsFiresNothing(t *testing.T) {
	c := NewFake(epoch)
	fired := false
	c.AfterFunc(time.Second, func() { fired = true })

	c.Set(epoch.Add(-time.Hour))

	assert.False(t, fired)
	assert.Equal(t, epoch.Add(-time.Hour), c.Now())
}

func TestSystem_AfterFuncFires(t *testing.T) {
	done := make(chan struct{})
	System().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("system timer did not fire")
	}
}
