package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"maternal-care-api/internal/domain/emergency"
)

type ContactsRepo struct {
	db *sql.DB
}

func NewContactsRepo(db *sql.DB) *ContactsRepo {
	return &ContactsRepo{db: db}
}

const contactColumns = `id, patient_id, name, relationship, phone_number, is_primary, created_at, updated_at`

// Create corre en una transacción: uq_emergency_contacts_primary obliga a
// bajar el primario anterior antes del insert.
func (r *ContactsRepo) Create(ctx context.Context, c emergency.Contact) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if c.IsPrimary {
		if _, err := tx.ExecContext(ctx, `
			UPDATE emergency_contacts
			SET is_primary = FALSE, updated_at = $2
			WHERE patient_id = $1 AND is_primary
		`, c.PatientID, c.CreatedAt); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO emergency_contacts (`+contactColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.PatientID,
		c.Name,
		c.Relationship,
		c.PhoneNumber,
		c.IsPrimary,
		c.CreatedAt,
		c.UpdatedAt,
	); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ContactsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, id)
	return affectedOrNotFound(res, err)
}

func (r *ContactsRepo) GetByID(ctx context.Context, id string) (emergency.Contact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return emergency.Contact{}, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM emergency_contacts WHERE id = $1`, id)

	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return emergency.Contact{}, ErrNotFound
	}
	return c, err
}

func (r *ContactsRepo) ListByPatient(ctx context.Context, patientID string) ([]emergency.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+contactColumns+`
		FROM emergency_contacts
		WHERE patient_id = $1
		ORDER BY created_at ASC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]emergency.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanContact(s rowScanner) (emergency.Contact, error) {
	var c emergency.Contact
	err := s.Scan(
		&c.ID,
		&c.PatientID,
		&c.Name,
		&c.Relationship,
		&c.PhoneNumber,
		&c.IsPrimary,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

type AlertsRepo struct {
	db *sql.DB
}

func NewAlertsRepo(db *sql.DB) *AlertsRepo {
	return &AlertsRepo{db: db}
}

const alertColumns = `
	id, patient_id, alert_type, location, message,
	assessment_id, mews_score, raised_by, created_at,
	is_resolved, resolved_at, resolved_by`

func (r *AlertsRepo) Create(ctx context.Context, a emergency.Alert) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sos_alerts (`+alertColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		a.ID,
		a.PatientID,
		string(a.Type),
		a.Location,
		a.Message,
		toNullString(a.AssessmentID),
		toNullInt(a.Score),
		a.RaisedBy,
		a.CreatedAt,
		a.Resolved,
		toNullTime(a.ResolvedAt),
		a.ResolvedBy,
	)
	return err
}

// Update solo toca el estado de resolución: el resto de la alerta es inmutable.
func (r *AlertsRepo) Update(ctx context.Context, a emergency.Alert) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sos_alerts
		SET is_resolved = $2, resolved_at = $3, resolved_by = $4
		WHERE id = $1
	`, a.ID, a.Resolved, toNullTime(a.ResolvedAt), a.ResolvedBy)
	return affectedOrNotFound(res, err)
}

func (r *AlertsRepo) GetByID(ctx context.Context, id string) (emergency.Alert, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return emergency.Alert{}, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+alertColumns+` FROM sos_alerts WHERE id = $1`, id)

	a, err := scanAlert(row)
	if errors.Is(err, sql.ErrNoRows) {
		return emergency.Alert{}, ErrNotFound
	}
	return a, err
}

func (r *AlertsRepo) ListByPatient(ctx context.Context, patientID string, filter emergency.AlertFilter) ([]emergency.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM sos_alerts WHERE patient_id = $1`
	if filter.OnlyOpen {
		query += ` AND is_resolved = FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, patientID, filter.NormalizedLimit())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]emergency.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAlert(s rowScanner) (emergency.Alert, error) {
	var a emergency.Alert
	var typ string
	var assessmentID sql.NullString
	var score sql.NullInt64
	var resolvedAt sql.NullTime

	if err := s.Scan(
		&a.ID,
		&a.PatientID,
		&typ,
		&a.Location,
		&a.Message,
		&assessmentID,
		&score,
		&a.RaisedBy,
		&a.CreatedAt,
		&a.Resolved,
		&resolvedAt,
		&a.ResolvedBy,
	); err != nil {
		return emergency.Alert{}, err
	}

	a.Type = emergency.AlertType(typ)
	a.AssessmentID = assessmentID.String
	if score.Valid {
		v := int(score.Int64)
		a.Score = &v
	}
	a.ResolvedAt = fromNullTime(resolvedAt)
	return a, nil
}

func affectedOrNotFound(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: strings.TrimSpace(s) != ""}
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
