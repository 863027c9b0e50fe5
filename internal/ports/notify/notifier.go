package notify

import (
	"context"
	"time"
)

// Contact es el destinatario que el canal puede usar (SMS, llamada, etc.).
type Contact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phone_number"`
	Primary      bool   `json:"primary"`
}

// Alert es el payload que sale hacia los canales de notificación.
type Alert struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	Type         string    `json:"type"`
	Location     string    `json:"location,omitempty"`
	Message      string    `json:"message"`
	AssessmentID string    `json:"assessment_id,omitempty"`
	Score        *int      `json:"score,omitempty"`
	Tier         string    `json:"tier,omitempty"`
	RaisedBy     string    `json:"raised_by"`
	RaisedAt     time.Time `json:"raised_at"`
	Contacts     []Contact `json:"contacts"`
}

// Notifier entrega una alerta SOS a un canal externo.
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}
