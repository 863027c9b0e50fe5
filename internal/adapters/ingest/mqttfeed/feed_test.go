package mqttfeed

import (
	"context"
	"errors"
	"testing"
	"time"

	"maternal-care-api/internal/domain/assessments"
	"maternal-care-api/internal/domain/mews"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	inputs []assessments.CreateInput
	err    error
}

func (f *fakeRecorder) Create(ctx context.Context, in assessments.CreateInput) (assessments.Assessment, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return assessments.Assessment{}, f.err
	}
	return assessments.Assessment{ID: "a-1", PatientID: in.PatientID}, nil
}

const validPayload = `{
	"device_id": "cuff-7",
	"measured_at": "2026-06-01T08:00:00Z",
	"systolic_bp": 120, "diastolic_bp": 80, "heart_rate": 80, "respiratory_rate": 16,
	"temperature": 37.0, "oxygen_saturation": 98, "consciousness_level": 4, "urine_output": 1.5
}`

func TestFeed_Topic(t *testing.T) {
	assert.Equal(t, "mews/+/vitals", New(&fakeRecorder{}, "", nil).Topic())
	assert.Equal(t, "clinic/+/vitals", New(&fakeRecorder{}, "/clinic/", nil).Topic())
}

func TestFeed_PatientFromTopic(t *testing.T) {
	f := New(&fakeRecorder{}, "mews", nil)

	id, err := f.PatientFromTopic("mews/patient-1/vitals")
	require.NoError(t, err)
	assert.Equal(t, "patient-1", id)

	for _, bad := range []string{"mews/patient-1", "other/patient-1/vitals", "mews//vitals", "mews/p/vitals/extra", "mews/p/alerts"} {
		_, err := f.PatientFromTopic(bad)
		assert.ErrorIs(t, err, ErrBadTopic, bad)
	}
}

func TestFeed_Handle_CreatesDeviceAssessment(t *testing.T) {
	rec := &fakeRecorder{}
	f := New(rec, "mews", nil)

	require.NoError(t, f.Handle("mews/patient-1/vitals", []byte(validPayload)))

	require.Len(t, rec.inputs, 1)
	in := rec.inputs[0]
	assert.Equal(t, "patient-1", in.PatientID)
	assert.Equal(t, "cuff-7", in.RecordedBy)
	assert.Equal(t, assessments.SourceDevice, in.Source)
	assert.True(t, in.AssessedAt.Equal(time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)))
	require.NotNil(t, in.Vitals.Temperature)
	assert.Equal(t, 37.0, *in.Vitals.Temperature)

	rec2, err := mews.NewVitalsRecord(in.Vitals)
	require.NoError(t, err)
	assert.Equal(t, 4, rec2.ConsciousnessLevel)
}

func TestFeed_Handle_DropsBadMessages(t *testing.T) {
	rec := &fakeRecorder{}
	f := New(rec, "mews", nil)

	assert.ErrorIs(t, f.Handle("mews/vitals", []byte(validPayload)), ErrBadTopic)
	assert.Error(t, f.Handle("mews/p/vitals", []byte("not json")))
	assert.Error(t, f.Handle("mews/p/vitals", []byte(`{"measured_at":"yesterday"}`)))
	assert.Empty(t, rec.inputs)
}

func TestFeed_Handle_PropagatesRecorderError(t *testing.T) {
	verr := &mews.ValidationError{Problems: []mews.FieldProblem{{Field: "heart_rate", Reason: "required"}}}
	rec := &fakeRecorder{err: verr}
	f := New(rec, "mews", nil)

	err := f.Handle("mews/p/vitals", []byte(`{"systolic_bp": 120}`))
	assert.True(t, errors.Is(err, mews.ErrInvalidVitals))
	assert.Equal(t, "device", rec.inputs[0].RecordedBy)
}
