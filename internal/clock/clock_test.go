package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtual_FiresInOffsetOrder(t *testing.T) {
	v := NewVirtual()
	var got []string

	v.After(3*time.Second, func() { got = append(got, "c") })
	v.After(1*time.Second, func() { got = append(got, "a") })
	v.After(2*time.Second, func() { got = append(got, "b1") })
	v.After(2*time.Second, func() { got = append(got, "b2") })

	v.Advance(1500 * time.Millisecond)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 1500*time.Millisecond, v.Now())

	v.Advance(10 * time.Second)
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, got)
	assert.Zero(t, v.Pending())
}

func TestVirtual_StopPreventsFire(t *testing.T) {
	v := NewVirtual()
	fired := false
	tm := v.After(time.Second, func() { fired = true })

	require.True(t, tm.Stop())
	require.False(t, tm.Stop(), "second stop reports nothing left to stop")

	v.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestVirtual_CallbackSchedulesInsideWindow(t *testing.T) {
	v := NewVirtual()
	var got []time.Duration

	v.After(time.Second, func() {
		got = append(got, v.Now())
		v.After(time.Second, func() { got = append(got, v.Now()) })
	})

	v.Advance(5 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, got)
}

func TestPosted_HandsCallbackToPost(t *testing.T) {
	v := NewVirtual()
	var queue []func()
	s := Posted(v, func(fn func()) { queue = append(queue, fn) })

	ran := false
	s.After(time.Second, func() { ran = true })
	v.Advance(time.Second)

	require.Len(t, queue, 1)
	assert.False(t, ran, "posted callbacks only run when the owner drains them")
	queue[0]()
	assert.True(t, ran)
}
