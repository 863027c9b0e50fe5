package careteam

import "time"

// Scope es un permiso que la paciente delega a un cuidador.
type Scope string

const (
	ScopeAssessmentsRead   Scope = "assessments:read"
	ScopeAssessmentsCreate Scope = "assessments:create"
	ScopeAlertsRead        Scope = "alerts:read"
	ScopeAlertsResolve     Scope = "alerts:resolve"
	ScopeContactsRead      Scope = "contacts:read"
)

// AllScopes en orden estable (para docs y validación).
var AllScopes = []Scope{
	ScopeAssessmentsRead,
	ScopeAssessmentsCreate,
	ScopeAlertsRead,
	ScopeAlertsResolve,
	ScopeContactsRead,
}

type Status string

const (
	StatusInvited Status = "invited"
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

// Grant: la paciente (PatientUserID) comparte su historial con un cuidador
// (médico, partera, pareja).
type Grant struct {
	ID string

	PatientUserID   string
	CaregiverUserID string

	Scopes []Scope
	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}

// HasScope valida si el grant incluye un scope.
func HasScope(g Grant, scope Scope) bool {
	for _, s := range g.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
