package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"maternal-care-api/internal/domain/emergency"
)

type contactRepo struct {
	mu   sync.RWMutex
	byID map[string]emergency.Contact
}

func NewContactRepo() emergency.ContactRepository {
	return &contactRepo{
		byID: make(map[string]emergency.Contact),
	}
}

func (r *contactRepo) Create(ctx context.Context, c emergency.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("contact id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("contact already exists")
	}
	if c.IsPrimary {
		for id, old := range r.byID {
			if old.PatientID == c.PatientID && old.IsPrimary {
				old.IsPrimary = false
				old.UpdatedAt = c.CreatedAt
				r.byID[id] = old
			}
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (emergency.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return emergency.Contact{}, ErrNotFound
	}
	return c, nil
}

func (r *contactRepo) ListByPatient(ctx context.Context, patientID string) ([]emergency.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]emergency.Contact, 0)
	for _, c := range r.byID {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type alertRepo struct {
	mu   sync.RWMutex
	byID map[string]emergency.Alert
}

func NewAlertRepo() emergency.AlertRepository {
	return &alertRepo{
		byID: make(map[string]emergency.Alert),
	}
}

func (r *alertRepo) Create(ctx context.Context, a emergency.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("alert id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("alert already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *alertRepo) Update(ctx context.Context, a emergency.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *alertRepo) GetByID(ctx context.Context, id string) (emergency.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return emergency.Alert{}, ErrNotFound
	}
	return a, nil
}

func (r *alertRepo) ListByPatient(ctx context.Context, patientID string, filter emergency.AlertFilter) ([]emergency.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]emergency.Alert, 0)
	for _, a := range r.byID {
		if a.PatientID != patientID {
			continue
		}
		if filter.OnlyOpen && a.Resolved {
			continue
		}
		out = append(out, a)
	}

	// created_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit := filter.NormalizedLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
