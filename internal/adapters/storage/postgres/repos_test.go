package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"maternal-care-api/internal/domain/assessments"
	"maternal-care-api/internal/domain/careteam"
	"maternal-care-api/internal/domain/emergency"
	"maternal-care-api/internal/domain/mews"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var assessmentCols = []string{
	"id", "patient_id", "assessed_at", "recorded_at",
	"systolic_bp", "diastolic_bp", "heart_rate", "respiratory_rate",
	"temperature", "oxygen_saturation", "consciousness_level", "urine_output",
	"mews_score", "risk_tier", "source", "recorded_by", "notes",
}

func TestMigrate_RunsEveryStatementInTx(t *testing.T) {
	db, mock := setupMockDB(t)

	stmts := SchemaStatements()
	require.NotEmpty(t, stmts)

	mock.ExpectBegin()
	for _, s := range stmts {
		mock.ExpectExec(regexp.QuoteMeta(s)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentsRepo_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAssessmentsRepo(db)

	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	a := assessments.Assessment{
		ID:         "a-1",
		PatientID:  "p",
		AssessedAt: at,
		RecordedAt: at,
		Vitals: mews.VitalsRecord{
			SystolicBP: 85, DiastolicBP: 60, HeartRate: 135, RespiratoryRate: 32,
			Temperature: 39.0, OxygenSaturation: 89, ConsciousnessLevel: 2, UrineOutput: 0.3,
		},
		Risk:       mews.RiskAssessment{Score: 20, Tier: mews.TierHigh},
		Source:     assessments.SourceDevice,
		RecordedBy: "cuff-7",
	}

	mock.ExpectExec(`INSERT INTO mews_assessments`).
		WithArgs("a-1", "p", at, at, 85, 60, 135, 32, 39.0, 89, 2, 0.3, 20, "HIGH", "device", "cuff-7", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentsRepo_ListByPatient_BuildsFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAssessmentsRepo(db)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	at := from.Add(time.Hour)

	rows := sqlmock.NewRows(assessmentCols).
		AddRow("a-2", "p", at, at, 85, 60, 135, 32, 39.0, 89, 2, 0.3, 20, "HIGH", "manual", "p", "dizzy").
		AddRow("a-1", "p", from, from, 95, 60, 115, 22, 38.2, 94, 4, 1.2, 7, "HIGH", "manual", "p", "")

	mock.ExpectQuery(`FROM mews_assessments WHERE patient_id = \$1 AND risk_tier IN \(\$2,\$3\) AND assessed_at >= \$4 ORDER BY assessed_at DESC, recorded_at DESC LIMIT \$5`).
		WithArgs("p", "HIGH", "MEDIUM", from, assessments.DefaultListLimit).
		WillReturnRows(rows)

	items, err := repo.ListByPatient(context.Background(), "p", assessments.ListFilter{
		Tiers: []mews.RiskTier{mews.TierHigh, mews.TierMedium},
		From:  &from,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a-2", items[0].ID)
	assert.Equal(t, 39.0, items[0].Vitals.Temperature)
	assert.Equal(t, mews.TierHigh, items[0].Risk.Tier)
	assert.Equal(t, "Immediate medical attention required", items[0].Risk.Message)
	assert.Equal(t, "dizzy", items[0].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentsRepo_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAssessmentsRepo(db)

	mock.ExpectQuery(`FROM mews_assessments WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(assessmentCols))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareTeamRepo_GetActiveGrant_ParsesScopes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCareTeamRepo(db)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "patient_user_id", "caregiver_user_id", "scopes", "status", "created_at", "updated_at", "revoked_at"}).
		AddRow("g1", "p", "doc", "assessments:read,alerts:read", "active", now, now, nil)

	mock.ExpectQuery(`FROM care_team_grants`).
		WithArgs("p", "doc").
		WillReturnRows(rows)

	g, err := repo.GetActiveGrant(context.Background(), "p", "doc")
	require.NoError(t, err)
	assert.Equal(t, careteam.StatusActive, g.Status)
	assert.Equal(t, []careteam.Scope{careteam.ScopeAssessmentsRead, careteam.ScopeAlertsRead}, g.Scopes)
	assert.Nil(t, g.RevokedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareTeamRepo_Update_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCareTeamRepo(db)

	now := time.Now().UTC()
	mock.ExpectExec(`UPDATE care_team_grants`).
		WithArgs("g1", "alerts:read", "revoked", now, now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), careteam.Grant{
		ID: "g1", Scopes: []careteam.Scope{careteam.ScopeAlertsRead},
		Status: careteam.StatusRevoked, UpdatedAt: now, RevokedAt: &now,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertsRepo_ListOpen_ScansNullableColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertsRepo(db)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "patient_id", "alert_type", "location", "message", "assessment_id", "mews_score", "raised_by", "created_at", "is_resolved", "resolved_at", "resolved_by"}
	rows := sqlmock.NewRows(cols).
		AddRow("al-2", "p", "medical", "", "MEWS score 9", "a-1", 9, "system", now, false, nil, "").
		AddRow("al-1", "p", "personal", "home", "help", nil, nil, "p", now.Add(-time.Hour), false, nil, "")

	mock.ExpectQuery(`FROM sos_alerts WHERE patient_id = \$1 AND is_resolved = FALSE ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("p", emergency.DefaultAlertLimit).
		WillReturnRows(rows)

	items, err := repo.ListByPatient(context.Background(), "p", emergency.AlertFilter{OnlyOpen: true})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Score)
	assert.Equal(t, 9, *items[0].Score)
	assert.Equal(t, "a-1", items[0].AssessmentID)
	assert.Nil(t, items[1].Score)
	assert.Empty(t, items[1].AssessmentID)
	assert.Equal(t, emergency.AlertPersonal, items[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertsRepo_CreateAndResolve(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertsRepo(db)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	score := 8

	mock.ExpectExec(`INSERT INTO sos_alerts`).
		WithArgs("al-1", "p", "medical", "", "m", "a-1", int64(8), "system", now, false, nil, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`UPDATE sos_alerts`).
		WithArgs("al-1", true, now, "doc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := emergency.Alert{ID: "al-1", PatientID: "p", Type: emergency.AlertMedical, Message: "m",
		AssessmentID: "a-1", Score: &score, RaisedBy: "system", CreatedAt: now}
	require.NoError(t, repo.Create(context.Background(), a))

	a.Resolved, a.ResolvedAt, a.ResolvedBy = true, &now, "doc"
	require.NoError(t, repo.Update(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactsRepo_CreatePrimary_DemotesInTx(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContactsRepo(db)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := emergency.Contact{
		ID: "c2", PatientID: "p", Name: "Bea", PhoneNumber: "5550100002",
		IsPrimary: true, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE emergency_contacts\s+SET is_primary = FALSE`).
		WithArgs("p", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO emergency_contacts`).
		WithArgs("c2", "p", "Bea", "", "5550100002", true, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactsRepo_CreatePrimary_InsertFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContactsRepo(db)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := emergency.Contact{ID: "c2", PatientID: "p", Name: "Bea", IsPrimary: true, CreatedAt: now, UpdatedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE emergency_contacts`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO emergency_contacts`).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Create(context.Background(), c), sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactsRepo_CreateNonPrimary_SkipsDemote(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContactsRepo(db)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO emergency_contacts`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), emergency.Contact{ID: "c3", PatientID: "p", Name: "Eva", CreatedAt: now, UpdatedAt: now}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactsRepo_DeleteMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContactsRepo(db)

	mock.ExpectExec(`DELETE FROM emergency_contacts`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
