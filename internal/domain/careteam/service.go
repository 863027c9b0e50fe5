package careteam

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type InviteInput struct {
	PatientUserID   string
	CaregiverUserID string
	Scopes          []Scope
}

// Invite crea (o actualiza) la invitación de la paciente a un cuidador.
// Re-invitar al mismo cuidador actualiza scopes del grant vigente en vez de duplicar.
func (s *Service) Invite(ctx context.Context, in InviteInput) (Grant, error) {
	patientID := strings.TrimSpace(in.PatientUserID)
	caregiverID := strings.TrimSpace(in.CaregiverUserID)

	if patientID == "" || caregiverID == "" || patientID == caregiverID {
		return Grant{}, ErrInvalidInput
	}

	// Sin scopes => lectura de evaluaciones y alertas.
	scopes := []Scope{ScopeAssessmentsRead, ScopeAlertsRead}
	if len(in.Scopes) > 0 {
		var err error
		scopes, err = normalizeScopesStrict(in.Scopes)
		if err != nil {
			return Grant{}, err
		}
		if len(scopes) == 0 {
			return Grant{}, ErrInvalidInput
		}
	}

	now := s.now()

	latest, matches, err := s.findMatches(ctx, patientID, caregiverID)
	if err != nil {
		return Grant{}, err
	}
	if latest != nil && latest.Status != StatusRevoked {
		s.revokeOthers(ctx, latest.ID, matches, now)

		latest.Scopes = scopes
		latest.UpdatedAt = now
		if err := s.repo.Update(ctx, *latest); err != nil {
			return Grant{}, err
		}
		return *latest, nil
	}

	g := Grant{
		ID:              uuid.NewString(),
		PatientUserID:   patientID,
		CaregiverUserID: caregiverID,
		Scopes:          scopes,
		Status:          StatusInvited,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return Grant{}, err
	}
	return g, nil
}

// Accept activa el grant. Idempotente. Deja un solo grant activo por
// (paciente, cuidador).
func (s *Service) Accept(ctx context.Context, grantID, caregiverUserID string) (Grant, error) {
	grantID = strings.TrimSpace(grantID)
	caregiverUserID = strings.TrimSpace(caregiverUserID)
	if grantID == "" || caregiverUserID == "" {
		return Grant{}, ErrInvalidInput
	}

	g, err := s.repo.GetByID(ctx, grantID)
	if err != nil {
		return Grant{}, ErrNotFound
	}
	if g.CaregiverUserID != caregiverUserID {
		return Grant{}, ErrForbidden
	}

	switch g.Status {
	case StatusActive:
		return g, nil
	case StatusRevoked:
		return Grant{}, ErrBadState
	}

	now := s.now()
	g.Status = StatusActive
	g.UpdatedAt = now
	if err := s.repo.Update(ctx, g); err != nil {
		return Grant{}, err
	}

	_, matches, err := s.findMatches(ctx, g.PatientUserID, g.CaregiverUserID)
	if err == nil {
		s.revokeOthers(ctx, g.ID, matches, now)
	}
	return g, nil
}

// Revoke corta el acceso inmediatamente. Solo la paciente puede revocar.
func (s *Service) Revoke(ctx context.Context, grantID, patientUserID string) (Grant, error) {
	grantID = strings.TrimSpace(grantID)
	patientUserID = strings.TrimSpace(patientUserID)
	if grantID == "" || patientUserID == "" {
		return Grant{}, ErrInvalidInput
	}

	g, err := s.repo.GetByID(ctx, grantID)
	if err != nil {
		return Grant{}, ErrNotFound
	}
	if g.PatientUserID != patientUserID {
		return Grant{}, ErrForbidden
	}
	if g.Status == StatusRevoked {
		return g, nil
	}

	now := s.now()
	g.Status = StatusRevoked
	g.UpdatedAt = now
	g.RevokedAt = &now
	if err := s.repo.Update(ctx, g); err != nil {
		return Grant{}, err
	}
	return g, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientUserID string) ([]Grant, error) {
	patientUserID = strings.TrimSpace(patientUserID)
	if patientUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPatient(ctx, patientUserID)
}

func (s *Service) ListByCaregiver(ctx context.Context, caregiverUserID string) ([]Grant, error) {
	caregiverUserID = strings.TrimSpace(caregiverUserID)
	if caregiverUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCaregiver(ctx, caregiverUserID)
}

func (s *Service) GetActiveGrant(ctx context.Context, patientUserID, caregiverUserID string) (Grant, error) {
	patientUserID = strings.TrimSpace(patientUserID)
	caregiverUserID = strings.TrimSpace(caregiverUserID)
	if patientUserID == "" || caregiverUserID == "" {
		return Grant{}, ErrInvalidInput
	}
	g, err := s.repo.GetActiveGrant(ctx, patientUserID, caregiverUserID)
	if err != nil {
		return Grant{}, ErrNotFound
	}
	return g, nil
}

// Authorize: la paciente siempre pasa; un cuidador necesita grant activo con scope.
func (s *Service) Authorize(ctx context.Context, patientUserID, userID string, scope Scope) error {
	if strings.TrimSpace(userID) == "" {
		return ErrForbidden
	}
	if patientUserID == userID {
		return nil
	}
	g, err := s.GetActiveGrant(ctx, patientUserID, userID)
	if err != nil || !HasScope(g, scope) {
		return ErrForbidden
	}
	return nil
}

// findMatches devuelve el grant más reciente (por UpdatedAt) entre paciente y
// cuidador, y todos los que matchean. latest es nil si no hay ninguno.
func (s *Service) findMatches(ctx context.Context, patientID, caregiverID string) (*Grant, []Grant, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}

	matches := make([]Grant, 0)
	for _, g := range items {
		if g.CaregiverUserID == caregiverID {
			matches = append(matches, g)
		}
	}
	if len(matches) == 0 {
		return nil, matches, nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
	})
	latest := matches[0]
	return &latest, matches, nil
}

func (s *Service) revokeOthers(ctx context.Context, keepID string, matches []Grant, now time.Time) {
	for _, g := range matches {
		if g.ID == keepID || g.Status == StatusRevoked {
			continue
		}
		g.Status = StatusRevoked
		g.UpdatedAt = now
		g.RevokedAt = &now
		_ = s.repo.Update(ctx, g) // best-effort
	}
}

func normalizeScopesStrict(in []Scope) ([]Scope, error) {
	allowed := make(map[Scope]struct{}, len(AllScopes))
	for _, s := range AllScopes {
		allowed[s] = struct{}{}
	}

	seen := map[Scope]struct{}{}
	out := make([]Scope, 0, len(in))
	for _, raw := range in {
		s := Scope(strings.TrimSpace(string(raw)))
		if s == "" {
			continue
		}
		if _, ok := allowed[s]; !ok {
			return nil, ErrInvalidInput
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
