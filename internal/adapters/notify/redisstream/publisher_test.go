package redisstream

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"maternal-care-api/internal/ports/notify"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	args []*redis.XAddArgs
	err  error
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1700000000000-0", f.err)
}

func TestPublisher_Notify(t *testing.T) {
	fake := &fakeStream{}
	p := New(fake, "", 1000)

	score := 9
	alert := notify.Alert{
		ID:        "alert-1",
		PatientID: "patient-1",
		Type:      "medical",
		Message:   "MEWS score 9",
		Score:     &score,
		Tier:      "HIGH",
		RaisedBy:  "system",
		RaisedAt:  time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Notify(context.Background(), alert))

	require.Len(t, fake.args, 1)
	args := fake.args[0]
	assert.Equal(t, DefaultStream, args.Stream)
	assert.Equal(t, int64(1000), args.MaxLen)
	assert.True(t, args.Approx)

	values, ok := args.Values.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alert-1", values["alert_id"])
	assert.Equal(t, "HIGH", values["tier"])

	var decoded notify.Alert
	require.NoError(t, json.Unmarshal([]byte(values["data"].(string)), &decoded))
	assert.Equal(t, alert.PatientID, decoded.PatientID)
	require.NotNil(t, decoded.Score)
	assert.Equal(t, 9, *decoded.Score)
}

func TestPublisher_NotifyWrapsRedisError(t *testing.T) {
	fake := &fakeStream{err: errors.New("connection refused")}
	p := New(fake, "custom", 0)

	err := p.Notify(context.Background(), notify.Alert{ID: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xadd custom")
	assert.Zero(t, fake.args[0].MaxLen)
}
