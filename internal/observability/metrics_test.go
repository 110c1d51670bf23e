package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSignup(t *testing.T) {
	RecordSignup("Chess Club", 3)
	RecordSignup("Chess Club", 4)

	require.Equal(t, 2.0, testutil.ToFloat64(signupCounter.WithLabelValues("Chess Club")))
	require.Equal(t, 4.0, testutil.ToFloat64(rosterGauge.WithLabelValues("Chess Club")))
}

func TestRecordUnregister(t *testing.T) {
	RecordUnregister("Art Club", 1)

	require.Equal(t, 1.0, testutil.ToFloat64(unregisterCounter.WithLabelValues("Art Club")))
	require.Equal(t, 1.0, testutil.ToFloat64(rosterGauge.WithLabelValues("Art Club")))
}

func TestRosterMetricsRegistered(t *testing.T) {
	RecordSignup("Debate Team", 1)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, family := range families {
		byName[family.GetName()] = family
	}
	require.Contains(t, byName, "signup_service_roster_signups_total")
	require.Contains(t, byName, "signup_service_roster_unregistrations_total")
	require.Contains(t, byName, "signup_service_roster_participants")
	require.Equal(t, dto.MetricType_GAUGE, byName["signup_service_roster_participants"].GetType())
}
