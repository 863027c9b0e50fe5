package mqttfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"maternal-care-api/internal/domain/assessments"
	"maternal-care-api/internal/domain/mews"
	"maternal-care-api/internal/platform/logger"
)

const DefaultTopicPrefix = "mews"

var ErrBadTopic = errors.New("topic does not match <prefix>/<patientID>/vitals")

// Recorder es la parte del servicio de evaluaciones que usa el feed.
type Recorder interface {
	Create(ctx context.Context, in assessments.CreateInput) (assessments.Assessment, error)
}

// Message es el payload que publican los dispositivos: los mismos nombres de
// campo que el body HTTP más el id del dispositivo.
type Message struct {
	mews.VitalsInput
	DeviceID   string `json:"device_id"`
	MeasuredAt string `json:"measured_at"` // RFC3339, opcional
}

// Feed traduce mensajes MQTT de signos vitales en evaluaciones (source=device).
type Feed struct {
	rec     Recorder
	prefix  string
	log     logger.Logger
	timeout time.Duration
}

func New(rec Recorder, prefix string, log logger.Logger) *Feed {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Feed{
		rec:     rec,
		prefix:  prefix,
		log:     log.With(map[string]any{"module": "mqttfeed"}),
		timeout: 5 * time.Second,
	}
}

// Topic es el filtro de suscripción: <prefix>/+/vitals.
func (f *Feed) Topic() string {
	return f.prefix + "/+/vitals"
}

// PatientFromTopic extrae el patientID de <prefix>/<patientID>/vitals.
func (f *Feed) PatientFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != f.prefix || parts[2] != "vitals" || strings.TrimSpace(parts[1]) == "" {
		return "", ErrBadTopic
	}
	return parts[1], nil
}

// Handle procesa un mensaje. Payloads inválidos se loguean y se devuelven
// como error; el subscriber no reintenta.
func (f *Feed) Handle(topic string, payload []byte) error {
	patientID, err := f.PatientFromTopic(topic)
	if err != nil {
		f.log.Warn("mqtt message dropped", map[string]any{"topic": topic, "error": err})
		return err
	}

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		f.log.Warn("mqtt payload is not valid json", map[string]any{"topic": topic, "error": err})
		return fmt.Errorf("decode payload: %w", err)
	}

	var measuredAt time.Time
	if v := strings.TrimSpace(msg.MeasuredAt); v != "" {
		measuredAt, err = time.Parse(time.RFC3339, v)
		if err != nil {
			f.log.Warn("mqtt measured_at is not RFC3339", map[string]any{"topic": topic, "value": v})
			return fmt.Errorf("measured_at: %w", err)
		}
	}

	recordedBy := strings.TrimSpace(msg.DeviceID)
	if recordedBy == "" {
		recordedBy = "device"
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	a, err := f.rec.Create(ctx, assessments.CreateInput{
		PatientID:  patientID,
		RecordedBy: recordedBy,
		Source:     assessments.SourceDevice,
		AssessedAt: measuredAt,
		Vitals:     msg.VitalsInput,
	})
	if err != nil {
		f.log.Warn("device vitals rejected", map[string]any{
			"topic":      topic,
			"patient_id": patientID,
			"device_id":  msg.DeviceID,
			"error":      err,
		})
		return err
	}

	f.log.Debug("device vitals recorded", map[string]any{
		"assessment_id": a.ID,
		"patient_id":    patientID,
		"tier":          string(a.Risk.Tier),
	})
	return nil
}
