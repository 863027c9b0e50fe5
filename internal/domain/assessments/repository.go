package assessments

import (
	"context"
	"time"

	"maternal-care-api/internal/domain/mews"
)

type Repository interface {
	Create(ctx context.Context, a Assessment) error
	GetByID(ctx context.Context, id string) (Assessment, error)
	// ListByPatient devuelve más reciente primero (assessed_at desc).
	ListByPatient(ctx context.Context, patientID string, filter ListFilter) ([]Assessment, error)
}

type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Tiers []mews.RiskTier
	Limit int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// NormalizedLimit aplica default y tope.
func (f ListFilter) NormalizedLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	}
	return f.Limit
}

// Matches aplica el filtro en memoria (lo usan repos sin SQL).
func (f ListFilter) Matches(a Assessment) bool {
	if f.From != nil && a.AssessedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && a.AssessedAt.After(*f.To) {
		return false
	}
	if len(f.Tiers) > 0 {
		for _, t := range f.Tiers {
			if a.Risk.Tier == t {
				return true
			}
		}
		return false
	}
	return true
}
