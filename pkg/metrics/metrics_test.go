package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/pocketpilot/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := metrics.New()
	m.TransactionRecorded("expense", "sms")
	m.TransactionRecorded("expense", "sms")
	m.DuplicateRejected()

	expected := `
# HELP pocketpilot_sms_duplicates_rejected_total SMS transactions rejected as duplicates.
# TYPE pocketpilot_sms_duplicates_rejected_total counter
pocketpilot_sms_duplicates_rejected_total 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"pocketpilot_sms_duplicates_rejected_total"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `pocketpilot_transactions_recorded_total{source="sms",type="expense"} 2`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.TransactionRecorded("income", "manual")
		m.DuplicateRejected()
		m.ClarificationNeeded("sms")
		m.DialogueTurn("idle")
		m.DailyStatus("gray")
	})
}
