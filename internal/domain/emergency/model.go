package emergency

import "time"

// Contact es un contacto de emergencia de la paciente.
// A lo sumo uno por paciente es primario.
type Contact struct {
	ID        string
	PatientID string

	Name         string
	Relationship string
	PhoneNumber  string
	IsPrimary    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// @Enum medical, personal, other
type AlertType string

const (
	AlertMedical  AlertType = "medical"
	AlertPersonal AlertType = "personal"
	AlertOther    AlertType = "other"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertMedical, AlertPersonal, AlertOther:
		return true
	}
	return false
}

// Alert es una alerta SOS. Manual (botón SOS) o automática (MEWS HIGH).
type Alert struct {
	ID        string
	PatientID string

	Type     AlertType
	Location string
	Message  string

	// Solo para alertas automáticas.
	AssessmentID string
	Score        *int

	RaisedBy  string
	CreatedAt time.Time

	Resolved   bool
	ResolvedAt *time.Time
	ResolvedBy string
}

// SystemActor es el RaisedBy de las alertas automáticas.
const SystemActor = "system"
