package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"maternal-care-api/internal/domain/assessments"
)

type assessmentRepo struct {
	mu   sync.RWMutex
	byID map[string]assessments.Assessment
}

func NewAssessmentRepo() assessments.Repository {
	return &assessmentRepo{
		byID: make(map[string]assessments.Assessment),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, a assessments.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("assessment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("assessment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (assessments.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return assessments.Assessment{}, ErrNotFound
	}
	return a, nil
}

func (r *assessmentRepo) ListByPatient(ctx context.Context, patientID string, filter assessments.ListFilter) ([]assessments.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assessments.Assessment, 0)
	for _, a := range r.byID {
		if a.PatientID != patientID || !filter.Matches(a) {
			continue
		}
		out = append(out, a)
	}

	// assessed_at desc; en empate, el último guardado primero
	sort.Slice(out, func(i, j int) bool {
		if out[i].AssessedAt.Equal(out[j].AssessedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].AssessedAt.After(out[j].AssessedAt)
	})

	if limit := filter.NormalizedLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
