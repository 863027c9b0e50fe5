package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"maternal-care-api/internal/domain/careteam"
)

type careTeamRepo struct {
	mu   sync.RWMutex
	byID map[string]careteam.Grant
}

func NewCareTeamRepo() careteam.Repository {
	return &careTeamRepo{
		byID: make(map[string]careteam.Grant),
	}
}

func (r *careTeamRepo) Create(ctx context.Context, g careteam.Grant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		return errors.New("grant id required")
	}
	if _, exists := r.byID[g.ID]; exists {
		return errors.New("grant already exists")
	}
	r.byID[g.ID] = cloneGrant(g)
	return nil
}

func (r *careTeamRepo) Update(ctx context.Context, g careteam.Grant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[g.ID]; !exists {
		return ErrNotFound
	}
	r.byID[g.ID] = cloneGrant(g)
	return nil
}

func (r *careTeamRepo) GetByID(ctx context.Context, id string) (careteam.Grant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return careteam.Grant{}, ErrNotFound
	}
	return cloneGrant(g), nil
}

func (r *careTeamRepo) ListByPatient(ctx context.Context, patientUserID string) ([]careteam.Grant, error) {
	return r.list(func(g careteam.Grant) bool { return g.PatientUserID == patientUserID }), nil
}

func (r *careTeamRepo) ListByCaregiver(ctx context.Context, caregiverUserID string) ([]careteam.Grant, error) {
	return r.list(func(g careteam.Grant) bool { return g.CaregiverUserID == caregiverUserID }), nil
}

// Si por data sucia hubiera varios activos, gana el más reciente por UpdatedAt
// (y en empate, por CreatedAt).
func (r *careTeamRepo) GetActiveGrant(ctx context.Context, patientUserID, caregiverUserID string) (careteam.Grant, error) {
	items := r.list(func(g careteam.Grant) bool {
		return g.PatientUserID == patientUserID &&
			g.CaregiverUserID == caregiverUserID &&
			g.Status == careteam.StatusActive
	})
	if len(items) == 0 {
		return careteam.Grant{}, ErrNotFound
	}
	return items[0], nil
}

// list devuelve updated_at desc.
func (r *careTeamRepo) list(keep func(careteam.Grant) bool) []careteam.Grant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]careteam.Grant, 0)
	for _, g := range r.byID {
		if keep(g) {
			out = append(out, cloneGrant(g))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// cloneGrant evita que el caller comparta el slice de scopes con el repo.
func cloneGrant(g careteam.Grant) careteam.Grant {
	g.Scopes = append([]careteam.Scope(nil), g.Scopes...)
	return g
}
