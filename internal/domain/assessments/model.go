package assessments

import (
	"time"

	"maternal-care-api/internal/domain/mews"
)

// Source indica de dónde llegó la toma de signos vitales.
// @Enum manual, device
type Source string

const (
	SourceManual Source = "manual"
	SourceDevice Source = "device"
)

func (s Source) Valid() bool {
	return s == SourceManual || s == SourceDevice
}

// Assessment es una toma de signos vitales persistida para una paciente.
// Risk se deriva de Vitals; los repos guardan score/tier solo para filtrar.
type Assessment struct {
	ID        string
	PatientID string

	AssessedAt time.Time // momento de la toma
	RecordedAt time.Time // momento en que se guardó

	Vitals mews.VitalsRecord
	Risk   mews.RiskAssessment

	Source     Source
	RecordedBy string // user id (paciente, cuidador) o client id del dispositivo
	Notes      string
}
