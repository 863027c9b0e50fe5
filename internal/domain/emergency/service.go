package emergency

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"maternal-care-api/internal/domain/mews"
	"maternal-care-api/internal/platform/logger"
	"maternal-care-api/internal/ports/notify"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	maxNameLen     = 100
	maxLocationLen = 200
	maxMessageLen  = 1000
)

type Service struct {
	contacts ContactRepository
	alerts   AlertRepository
	notifier notify.Notifier
	log      logger.Logger
	now      func() time.Time
}

// NewService: notifier y log pueden ser nil (sin notificación / sin logs).
func NewService(contacts ContactRepository, alerts AlertRepository, notifier notify.Notifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		contacts: contacts,
		alerts:   alerts,
		notifier: notifier,
		log:      log.With(map[string]any{"module": "emergency"}),
		now:      time.Now,
	}
}

// -------------------------
// Contactos
// -------------------------

type ContactInput struct {
	Name         string
	Relationship string
	PhoneNumber  string
	IsPrimary    bool
}

// AddContact guarda un contacto. Si es primario, el anterior deja de serlo.
func (s *Service) AddContact(ctx context.Context, patientID string, in ContactInput) (Contact, error) {
	patientID = strings.TrimSpace(patientID)
	name := strings.TrimSpace(in.Name)
	if patientID == "" || name == "" || len(name) > maxNameLen {
		return Contact{}, ErrInvalidInput
	}
	phone, ok := normalizePhone(in.PhoneNumber)
	if !ok {
		return Contact{}, fmt.Errorf("%w: phone_number", ErrInvalidInput)
	}

	now := s.now().UTC()
	c := Contact{
		ID:           uuid.NewString(),
		PatientID:    patientID,
		Name:         name,
		Relationship: strings.TrimSpace(in.Relationship),
		PhoneNumber:  phone,
		IsPrimary:    in.IsPrimary,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// El repo baja al primario anterior junto con el insert.
	if err := s.contacts.Create(ctx, c); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// ListContacts: primario primero, luego por nombre.
func (s *Service) ListContacts(ctx context.Context, patientID string) ([]Contact, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.contacts.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsPrimary != items[j].IsPrimary {
			return items[i].IsPrimary
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (s *Service) DeleteContact(ctx context.Context, patientID, contactID string) error {
	c, err := s.contacts.GetByID(ctx, strings.TrimSpace(contactID))
	if err != nil || c.PatientID != patientID {
		return ErrNotFound
	}
	if err := s.contacts.Delete(ctx, c.ID); err != nil {
		return err
	}
	return nil
}

// -------------------------
// Alertas SOS
// -------------------------

type RaiseInput struct {
	PatientID    string
	RaisedBy     string
	Type         AlertType
	Location     string
	Message      string
	AssessmentID string
	Score        *int
}

// RaiseAlert persiste la alerta y notifica. Una falla del canal se loguea:
// la alerta queda registrada igual.
func (s *Service) RaiseAlert(ctx context.Context, in RaiseInput) (Alert, error) {
	patientID := strings.TrimSpace(in.PatientID)
	raisedBy := strings.TrimSpace(in.RaisedBy)
	if patientID == "" || raisedBy == "" {
		return Alert{}, ErrInvalidInput
	}

	typ := in.Type
	if typ == "" {
		typ = AlertMedical
	}
	if !typ.Valid() {
		return Alert{}, fmt.Errorf("%w: alert_type", ErrInvalidInput)
	}

	location := strings.TrimSpace(in.Location)
	message := strings.TrimSpace(in.Message)
	if len(location) > maxLocationLen || len(message) > maxMessageLen {
		return Alert{}, ErrInvalidInput
	}

	a := Alert{
		ID:           uuid.NewString(),
		PatientID:    patientID,
		Type:         typ,
		Location:     location,
		Message:      message,
		AssessmentID: strings.TrimSpace(in.AssessmentID),
		Score:        in.Score,
		RaisedBy:     raisedBy,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.alerts.Create(ctx, a); err != nil {
		return Alert{}, err
	}

	s.log.Warn("sos alert raised", map[string]any{
		"alert_id":   a.ID,
		"patient_id": a.PatientID,
		"type":       string(a.Type),
		"raised_by":  a.RaisedBy,
	})

	s.dispatch(ctx, a)
	return a, nil
}

// OnHighRisk levanta una alerta médica automática para una evaluación HIGH.
func (s *Service) OnHighRisk(ctx context.Context, patientID, assessmentID string, risk mews.RiskAssessment) error {
	score := risk.Score
	_, err := s.RaiseAlert(ctx, RaiseInput{
		PatientID:    patientID,
		RaisedBy:     SystemActor,
		Type:         AlertMedical,
		Message:      fmt.Sprintf("MEWS score %d: %s", risk.Score, risk.Tier.Label()),
		AssessmentID: assessmentID,
		Score:        &score,
	})
	return err
}

func (s *Service) ListAlerts(ctx context.Context, patientID string, filter AlertFilter) ([]Alert, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	filter.Limit = filter.NormalizedLimit()
	return s.alerts.ListByPatient(ctx, patientID, filter)
}

// ResolveAlert marca la alerta como resuelta. Idempotente.
func (s *Service) ResolveAlert(ctx context.Context, patientID, alertID, userID string) (Alert, error) {
	if strings.TrimSpace(userID) == "" {
		return Alert{}, ErrInvalidInput
	}
	a, err := s.alerts.GetByID(ctx, strings.TrimSpace(alertID))
	if err != nil || a.PatientID != patientID {
		return Alert{}, ErrNotFound
	}
	if a.Resolved {
		return a, nil
	}

	now := s.now().UTC()
	a.Resolved = true
	a.ResolvedAt = &now
	a.ResolvedBy = userID
	if err := s.alerts.Update(ctx, a); err != nil {
		return Alert{}, err
	}

	s.log.Info("sos alert resolved", map[string]any{
		"alert_id":    a.ID,
		"patient_id":  a.PatientID,
		"resolved_by": userID,
	})
	return a, nil
}

func (s *Service) dispatch(ctx context.Context, a Alert) {
	if s.notifier == nil {
		return
	}

	contacts, err := s.ListContacts(ctx, a.PatientID)
	if err != nil {
		s.log.Warn("could not load emergency contacts", map[string]any{
			"alert_id": a.ID,
			"error":    err,
		})
	}

	payload := notify.Alert{
		ID:           a.ID,
		PatientID:    a.PatientID,
		Type:         string(a.Type),
		Location:     a.Location,
		Message:      a.Message,
		AssessmentID: a.AssessmentID,
		Score:        a.Score,
		RaisedBy:     a.RaisedBy,
		RaisedAt:     a.CreatedAt,
		Contacts:     make([]notify.Contact, 0, len(contacts)),
	}
	if a.Score != nil {
		payload.Tier = string(mews.TierFor(*a.Score))
	}
	for _, c := range contacts {
		payload.Contacts = append(payload.Contacts, notify.Contact{
			Name:         c.Name,
			Relationship: c.Relationship,
			PhoneNumber:  c.PhoneNumber,
			Primary:      c.IsPrimary,
		})
	}

	if err := s.notifier.Notify(ctx, payload); err != nil {
		s.log.Error("sos notification failed", map[string]any{
			"alert_id":   a.ID,
			"patient_id": a.PatientID,
			"error":      err,
		})
	}
}

// normalizePhone deja dígitos y un '+' inicial. Acepta 7 a 15 dígitos (E.164).
func normalizePhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	var b strings.Builder
	digits := 0
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separadores
		default:
			return "", false
		}
	}
	if digits < 7 || digits > 15 {
		return "", false
	}
	return b.String(), true
}
