package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/wisp-ui/wisp/internal/clock"
	"github.com/wisp-ui/wisp/internal/toast"
)

func TestCollectorTracksQueueLifecycle(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := New(WithRegistry(reg))

	fake := clock.NewFake(time.Unix(0, 0))
	q := toast.New(toast.WithMax(2), toast.WithClock(fake), toast.WithObserver(collector.Observe))

	q.Enqueue(toast.Options{Variant: toast.VariantSuccess, Duration: toast.Duration(time.Second)})
	q.Enqueue(toast.Options{Variant: toast.VariantError, Duration: toast.Persistent()})
	q.Enqueue(toast.Options{Variant: toast.VariantError, Duration: toast.Persistent()})
	require.Equal(t, 2.0, testutil.ToFloat64(collector.active))

	fake.Advance(time.Second)
	require.Equal(t, 2.0, testutil.ToFloat64(collector.active), "evicted toast's timer must not fire")

	q.Dismiss(q.Records()[0].ID)
	q.DismissAll()

	require.Equal(t, 0.0, testutil.ToFloat64(collector.active))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.enqueued.WithLabelValues("success")))
	require.Equal(t, 2.0, testutil.ToFloat64(collector.enqueued.WithLabelValues("error")))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.removed.WithLabelValues("evicted")))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.removed.WithLabelValues("dismissed")))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.removed.WithLabelValues("cleared")))
	require.Equal(t, 0.0, testutil.ToFloat64(collector.removed.WithLabelValues("expired")))
}

func TestCollectorNamespaceAndLabels(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := New(
		WithRegistry(reg),
		WithNamespace("demo"),
		WithConstLabels(prometheus.Labels{"provider": "main"}),
	)
	collector.Observe(toast.Event{Type: toast.EventEnqueued, Record: toast.Record{Variant: toast.VariantInfo}})

	count, err := testutil.GatherAndCount(reg, "demo_toasts_enqueued_total", "demo_toasts_active")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNilCollectorIgnoresEvents(t *testing.T) {
	t.Parallel()

	var c *Collector
	c.Observe(toast.Event{Type: toast.EventEnqueued})
}
