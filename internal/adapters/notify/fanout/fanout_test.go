package fanout

import (
	"context"
	"errors"
	"testing"

	"maternal-care-api/internal/platform/logger"
	"maternal-care-api/internal/ports/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingNotifier struct {
	calls int
	err   error
}

func (c *countingNotifier) Notify(ctx context.Context, a notify.Alert) error {
	c.calls++
	return c.err
}

func TestNotifier_DeliversToAllEvenWhenOneFails(t *testing.T) {
	broken := &countingNotifier{err: errors.New("boom")}
	ok := &countingNotifier{}

	n := New(nil,
		Named{Name: "redis", Notifier: broken},
		Named{Name: "webhook", Notifier: ok},
		Named{Name: "disabled", Notifier: nil},
	)
	require.Equal(t, 2, n.Len())

	err := n.Notify(context.Background(), notify.Alert{ID: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: boom")
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, ok.calls)
}

func TestLogNotifier_WritesWarn(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ln := NewLogNotifier(logger.FromZap(zap.New(core)))

	score := 8
	require.NoError(t, ln.Notify(context.Background(), notify.Alert{ID: "a", PatientID: "p", Score: &score, Tier: "HIGH"}))

	entries := logs.FilterMessage("SOS").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "p", fields["patient_id"])
	assert.Equal(t, "HIGH", fields["tier"])
}
