package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotDelta_CoversOneInterval(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveNotification(OutcomeSent)
	m.ObserveNotification(OutcomeSent)
	m.ObserveNotification(OutcomeSkipped)
	m.ObserveWebhook(403)

	first := m.SnapshotDelta()
	assert.Equal(t, int64(2), first.Sent)
	assert.Equal(t, int64(1), first.Skipped)
	assert.Equal(t, int64(0), first.Failed)
	assert.Equal(t, int64(1), first.Rejected)

	m.ObserveNotification(OutcomeFailed)

	second := m.SnapshotDelta()
	assert.Equal(t, int64(0), second.Sent, "delta resets between summaries")
	assert.Equal(t, int64(1), second.Failed)
}

func TestObserveWebhook_OnlyRejectionsCountAsRejected(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveWebhook(200)
	m.ObserveWebhook(500)
	m.ObserveWebhook(403)

	snap := m.SnapshotDelta()
	assert.Equal(t, int64(1), snap.Rejected)
}
