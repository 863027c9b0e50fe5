package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"maternal-care-api/internal/domain/careteam"
)

type CareTeamRepo struct {
	db *sql.DB
}

func NewCareTeamRepo(db *sql.DB) *CareTeamRepo {
	return &CareTeamRepo{db: db}
}

const grantColumns = `
	id, patient_user_id, caregiver_user_id,
	scopes, status,
	created_at, updated_at, revoked_at`

func (r *CareTeamRepo) Create(ctx context.Context, g careteam.Grant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_team_grants (`+grantColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		g.ID,
		g.PatientUserID,
		g.CaregiverUserID,
		joinScopes(g.Scopes),
		string(g.Status),
		g.CreatedAt,
		g.UpdatedAt,
		toNullTime(g.RevokedAt),
	)
	return err
}

func (r *CareTeamRepo) Update(ctx context.Context, g careteam.Grant) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE care_team_grants
		SET
			scopes = $2,
			status = $3,
			updated_at = $4,
			revoked_at = $5
		WHERE id = $1
	`,
		g.ID,
		joinScopes(g.Scopes),
		string(g.Status),
		g.UpdatedAt,
		toNullTime(g.RevokedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CareTeamRepo) GetByID(ctx context.Context, id string) (careteam.Grant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return careteam.Grant{}, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+grantColumns+` FROM care_team_grants WHERE id = $1`, id)
	return scanGrant(row)
}

func (r *CareTeamRepo) ListByPatient(ctx context.Context, patientUserID string) ([]careteam.Grant, error) {
	return r.list(ctx, `
		SELECT `+grantColumns+`
		FROM care_team_grants
		WHERE patient_user_id = $1
		ORDER BY updated_at DESC
	`, strings.TrimSpace(patientUserID))
}

func (r *CareTeamRepo) ListByCaregiver(ctx context.Context, caregiverUserID string) ([]careteam.Grant, error) {
	return r.list(ctx, `
		SELECT `+grantColumns+`
		FROM care_team_grants
		WHERE caregiver_user_id = $1
		ORDER BY updated_at DESC
	`, strings.TrimSpace(caregiverUserID))
}

func (r *CareTeamRepo) GetActiveGrant(ctx context.Context, patientUserID, caregiverUserID string) (careteam.Grant, error) {
	patientUserID = strings.TrimSpace(patientUserID)
	caregiverUserID = strings.TrimSpace(caregiverUserID)
	if patientUserID == "" || caregiverUserID == "" {
		return careteam.Grant{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+grantColumns+`
		FROM care_team_grants
		WHERE patient_user_id = $1
		  AND caregiver_user_id = $2
		  AND status = 'active'
		ORDER BY updated_at DESC, created_at DESC
		LIMIT 1
	`, patientUserID, caregiverUserID)
	return scanGrant(row)
}

func (r *CareTeamRepo) list(ctx context.Context, query string, arg string) ([]careteam.Grant, error) {
	if arg == "" {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]careteam.Grant, 0)
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGrant(s rowScanner) (careteam.Grant, error) {
	var g careteam.Grant
	var scopes, status string
	var revokedAt sql.NullTime

	if err := s.Scan(
		&g.ID,
		&g.PatientUserID,
		&g.CaregiverUserID,
		&scopes,
		&status,
		&g.CreatedAt,
		&g.UpdatedAt,
		&revokedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return careteam.Grant{}, ErrNotFound
		}
		return careteam.Grant{}, err
	}

	g.Scopes = splitScopes(scopes)
	g.Status = careteam.Status(status)
	g.RevokedAt = fromNullTime(revokedAt)
	return g, nil
}

// Scopes se guardan como CSV ("assessments:read,alerts:read").
func joinScopes(in []careteam.Scope) string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return strings.Join(out, ",")
}

func splitScopes(raw string) []careteam.Scope {
	out := make([]careteam.Scope, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, careteam.Scope(p))
		}
	}
	return out
}
