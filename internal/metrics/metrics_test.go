package metrics_test

import (
	"testing"

	"github.com/romshark/ntoa/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Conversions.WithLabelValues("16").Add(3)
	m.Failures.WithLabelValues(metrics.ReasonInvalidRadix).Inc()
	m.StreamSessions.Inc()

	require.Equal(t, 3.0, testutil.ToFloat64(m.Conversions.WithLabelValues("16")))
	require.Equal(t, 1.0, testutil.ToFloat64(
		m.Failures.WithLabelValues(metrics.ReasonInvalidRadix),
	))
	require.Equal(t, 1.0, testutil.ToFloat64(m.StreamSessions))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 4)
}

func TestNewUnregistered(t *testing.T) {
	// Creating metrics twice without a registerer must not panic
	_ = metrics.New(nil)
	_ = metrics.New(nil)
}
