package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFakeFiresAtDeadline(t *testing.T) {
	t.Parallel()

	fake := NewFake(epoch)
	fired := 0
	fake.AfterFunc(time.Second, func() { fired++ })

	fake.Advance(999 * time.Millisecond)
	require.Equal(t, 0, fired)
	require.Equal(t, 1, fake.Pending())

	fake.Advance(time.Millisecond)
	require.Equal(t, 1, fired)
	require.Equal(t, 0, fake.Pending())
	require.Equal(t, epoch.Add(time.Second), fake.Now())

	fake.Advance(time.Hour)
	require.Equal(t, 1, fired, "timers are one-shot")
}

func TestFakeOrdersCallbacksByDeadlineThenSchedule(t *testing.T) {
	t.Parallel()

	fake := NewFake(epoch)
	var order []string
	fake.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	fake.AfterFunc(time.Second, func() { order = append(order, "a") })
	fake.AfterFunc(time.Second, func() { order = append(order, "b") })

	fake.Advance(5 * time.Second)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestFakeStop(t *testing.T) {
	t.Parallel()

	fake := NewFake(epoch)
	fired := false
	timer := fake.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	fake.Advance(2 * time.Second)
	require.False(t, fired)
	require.Equal(t, 0, fake.Pending())
}

func TestFakeStopAfterFireReportsFalse(t *testing.T) {
	t.Parallel()

	fake := NewFake(epoch)
	timer := fake.AfterFunc(time.Millisecond, func() {})
	fake.Advance(time.Millisecond)

	require.False(t, timer.Stop())
}

func TestFakeCallbackMaySchedule(t *testing.T) {
	t.Parallel()

	fake := NewFake(epoch)
	var seen []time.Time
	fake.AfterFunc(time.Second, func() {
		seen = append(seen, fake.Now())
		fake.AfterFunc(time.Second, func() {
			seen = append(seen, fake.Now())
		})
	})

	fake.Advance(3 * time.Second)
	require.Equal(t, []time.Time{epoch.Add(time.Second), epoch.Add(2 * time.Second)}, seen)
	require.Equal(t, epoch.Add(3*time.Second), fake.Now())
}

func TestRealClockStop(t *testing.T) {
	t.Parallel()

	timer := Real().AfterFunc(time.Hour, func() {})
	require.True(t, timer.Stop())
}
