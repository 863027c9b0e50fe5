package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"maternal-care-api/internal/domain/assessments"
	"maternal-care-api/internal/domain/careteam"
	"maternal-care-api/internal/domain/emergency"
	"maternal-care-api/internal/domain/mews"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentRepo_OrderFilterLimit(t *testing.T) {
	repo := NewAssessmentRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tiers := []mews.RiskTier{mews.TierNormal, mews.TierHigh, mews.TierLow, mews.TierHigh}
	for i, tier := range tiers {
		require.NoError(t, repo.Create(ctx, assessments.Assessment{
			ID:         fmt.Sprintf("a-%d", i),
			PatientID:  "p",
			AssessedAt: base.Add(time.Duration(i) * time.Hour),
			Risk:       mews.RiskAssessment{Tier: tier},
		}))
	}
	require.NoError(t, repo.Create(ctx, assessments.Assessment{ID: "other", PatientID: "q", AssessedAt: base}))
	assert.Error(t, repo.Create(ctx, assessments.Assessment{ID: "a-0", PatientID: "p"}))

	all, err := repo.ListByPatient(ctx, "p", assessments.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "a-3", all[0].ID)
	assert.Equal(t, "a-0", all[3].ID)

	high, err := repo.ListByPatient(ctx, "p", assessments.ListFilter{Tiers: []mews.RiskTier{mews.TierHigh}, Limit: 1})
	require.NoError(t, err)
	require.Len(t, high, 1)
	assert.Equal(t, "a-3", high[0].ID)

	from, to := base.Add(time.Hour), base.Add(2*time.Hour)
	window, err := repo.ListByPatient(ctx, "p", assessments.ListFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCareTeamRepo_ActiveGrantAndCopies(t *testing.T) {
	repo := NewCareTeamRepo()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	g := careteam.Grant{
		ID: "g1", PatientUserID: "p", CaregiverUserID: "doc",
		Scopes: []careteam.Scope{careteam.ScopeAlertsRead}, Status: careteam.StatusInvited,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, g))

	_, err := repo.GetActiveGrant(ctx, "p", "doc")
	assert.ErrorIs(t, err, ErrNotFound)

	g.Status = careteam.StatusActive
	g.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, g))

	got, err := repo.GetActiveGrant(ctx, "p", "doc")
	require.NoError(t, err)
	got.Scopes[0] = careteam.ScopeAssessmentsCreate

	again, _ := repo.GetByID(ctx, "g1")
	assert.Equal(t, careteam.ScopeAlertsRead, again.Scopes[0], "repo must not share scope slices")

	mine, _ := repo.ListByCaregiver(ctx, "doc")
	assert.Len(t, mine, 1)
	assert.ErrorIs(t, repo.Update(ctx, careteam.Grant{ID: "nope"}), ErrNotFound)
}

func TestEmergencyRepos(t *testing.T) {
	ctx := context.Background()
	contacts := NewContactRepo()
	alerts := NewAlertRepo()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, contacts.Create(ctx, emergency.Contact{ID: "c1", PatientID: "p", Name: "Ana", IsPrimary: true, CreatedAt: now}))
	require.NoError(t, contacts.Create(ctx, emergency.Contact{ID: "other", PatientID: "q", Name: "Eva", IsPrimary: true, CreatedAt: now}))
	require.NoError(t, contacts.Create(ctx, emergency.Contact{ID: "c2", PatientID: "p", Name: "Bea", IsPrimary: true, CreatedAt: now.Add(time.Minute)}))
	// duplicado: no debe tocar al primario actual
	require.Error(t, contacts.Create(ctx, emergency.Contact{ID: "c2", PatientID: "p", Name: "Dup", IsPrimary: true, CreatedAt: now}))

	c1, err := contacts.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, c1.IsPrimary)
	c2, err := contacts.GetByID(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, c2.IsPrimary)
	other, err := contacts.GetByID(ctx, "other")
	require.NoError(t, err)
	assert.True(t, other.IsPrimary, "otra paciente no se toca")

	require.NoError(t, contacts.Delete(ctx, "c1"))
	assert.ErrorIs(t, contacts.Delete(ctx, "c1"), ErrNotFound)

	for i := 0; i < 3; i++ {
		require.NoError(t, alerts.Create(ctx, emergency.Alert{
			ID: fmt.Sprintf("al-%d", i), PatientID: "p", CreatedAt: now.Add(time.Duration(i) * time.Minute),
			Resolved: i == 0,
		}))
	}
	open, err := alerts.ListByPatient(ctx, "p", emergency.AlertFilter{OnlyOpen: true})
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "al-2", open[0].ID)
}

func TestAssessmentRepo_ConcurrentAccess(t *testing.T) {
	repo := NewAssessmentRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, assessments.Assessment{ID: fmt.Sprintf("a-%d", i), PatientID: "p", AssessedAt: time.Now()})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = repo.ListByPatient(ctx, "p", assessments.ListFilter{})
		}()
	}
	wg.Wait()

	all, err := repo.ListByPatient(ctx, "p", assessments.ListFilter{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
