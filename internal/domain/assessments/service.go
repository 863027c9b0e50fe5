package assessments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"maternal-care-api/internal/domain/mews"
	"maternal-care-api/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Tolerancia para relojes de dispositivos adelantados.
const maxClockSkew = 5 * time.Minute

// HighRiskHook recibe las evaluaciones HIGH (el módulo de emergencias lo implementa).
type HighRiskHook interface {
	OnHighRisk(ctx context.Context, patientID, assessmentID string, risk mews.RiskAssessment) error
}

type Service struct {
	repo Repository
	hook HighRiskHook
	log  logger.Logger
	now  func() time.Time
}

// NewService: hook y log pueden ser nil.
func NewService(repo Repository, hook HighRiskHook, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		hook: hook,
		log:  log.With(map[string]any{"module": "assessments"}),
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientID  string
	RecordedBy string
	Source     Source
	AssessedAt time.Time // zero => ahora
	Notes      string
	Vitals     mews.VitalsInput
}

// Create valida los vitales, puntúa, persiste y escala si el tier es HIGH.
// Un *mews.ValidationError se devuelve tal cual para que el caller liste los campos.
func (s *Service) Create(ctx context.Context, in CreateInput) (Assessment, error) {
	patientID := strings.TrimSpace(in.PatientID)
	recordedBy := strings.TrimSpace(in.RecordedBy)
	if patientID == "" || recordedBy == "" {
		return Assessment{}, ErrInvalidInput
	}

	src := in.Source
	if src == "" {
		src = SourceManual
	}
	if !src.Valid() {
		return Assessment{}, ErrInvalidInput
	}

	rec, err := mews.NewVitalsRecord(in.Vitals)
	if err != nil {
		return Assessment{}, err
	}
	risk, err := mews.Assess(rec)
	if err != nil {
		return Assessment{}, err
	}

	now := s.now().UTC()
	assessedAt := in.AssessedAt
	if assessedAt.IsZero() {
		assessedAt = now
	}
	if assessedAt.After(now.Add(maxClockSkew)) {
		return Assessment{}, fmt.Errorf("%w: assessed_at is in the future", ErrInvalidInput)
	}

	a := Assessment{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		AssessedAt: assessedAt.UTC(),
		RecordedAt: now,
		Vitals:     rec,
		Risk:       risk,
		Source:     src,
		RecordedBy: recordedBy,
		Notes:      strings.TrimSpace(in.Notes),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Assessment{}, err
	}

	s.log.Info("assessment recorded", map[string]any{
		"assessment_id": a.ID,
		"patient_id":    a.PatientID,
		"score":         risk.Score,
		"tier":          string(risk.Tier),
		"source":        string(a.Source),
	})

	if risk.RequiresEscalation() && s.hook != nil {
		// La evaluación ya quedó guardada; una falla al notificar no la revierte.
		if err := s.hook.OnHighRisk(ctx, a.PatientID, a.ID, risk); err != nil {
			s.log.Error("high risk escalation failed", map[string]any{
				"assessment_id": a.ID,
				"patient_id":    a.PatientID,
				"error":         err,
			})
		}
	}

	return a, nil
}

func (s *Service) GetByID(ctx context.Context, patientID, id string) (Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Assessment{}, ErrInvalidInput
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil || a.PatientID != patientID {
		return Assessment{}, ErrNotFound
	}
	return s.rescore(a), nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, filter ListFilter) ([]Assessment, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}
	filter.Limit = filter.NormalizedLimit()

	items, err := s.repo.ListByPatient(ctx, patientID, filter)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = s.rescore(items[i])
	}
	return items, nil
}

// rescore recalcula el RiskAssessment desde los vitales guardados.
func (s *Service) rescore(a Assessment) Assessment {
	risk, err := mews.Assess(a.Vitals)
	if err != nil {
		s.log.Warn("stored vitals failed validation", map[string]any{
			"assessment_id": a.ID,
			"error":         err,
		})
		return a
	}
	a.Risk = risk
	return a
}
