package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"maternal-care-api/internal/domain/assessments"
	"maternal-care-api/internal/domain/mews"
)

type AssessmentsRepo struct {
	db *sql.DB
}

func NewAssessmentsRepo(db *sql.DB) *AssessmentsRepo {
	return &AssessmentsRepo{db: db}
}

const assessmentColumns = `
	id, patient_id, assessed_at, recorded_at,
	systolic_bp, diastolic_bp, heart_rate, respiratory_rate,
	temperature, oxygen_saturation, consciousness_level, urine_output,
	mews_score, risk_tier, source, recorded_by, notes`

func (r *AssessmentsRepo) Create(ctx context.Context, a assessments.Assessment) error {
	v := a.Vitals
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mews_assessments (`+assessmentColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		a.ID,
		a.PatientID,
		a.AssessedAt,
		a.RecordedAt,
		v.SystolicBP,
		v.DiastolicBP,
		v.HeartRate,
		v.RespiratoryRate,
		v.Temperature,
		v.OxygenSaturation,
		v.ConsciousnessLevel,
		v.UrineOutput,
		a.Risk.Score,
		string(a.Risk.Tier),
		string(a.Source),
		a.RecordedBy,
		a.Notes,
	)
	return err
}

func (r *AssessmentsRepo) GetByID(ctx context.Context, id string) (assessments.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return assessments.Assessment{}, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+assessmentColumns+` FROM mews_assessments WHERE id = $1`, id)

	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return assessments.Assessment{}, ErrNotFound
	}
	return a, err
}

func (r *AssessmentsRepo) ListByPatient(ctx context.Context, patientID string, filter assessments.ListFilter) ([]assessments.Assessment, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + assessmentColumns + ` FROM mews_assessments WHERE patient_id = $1`)

	args := []any{patientID}
	argN := 2

	if len(filter.Tiers) > 0 {
		placeholders := make([]string, 0, len(filter.Tiers))
		for _, t := range filter.Tiers {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND risk_tier IN (" + strings.Join(placeholders, ",") + ")")
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND assessed_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND assessed_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	sb.WriteString(" ORDER BY assessed_at DESC, recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, filter.NormalizedLimit())

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessments.Assessment, 0)
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// scanAssessment deja Risk con score/tier guardados; el servicio recalcula el resto.
func scanAssessment(s rowScanner) (assessments.Assessment, error) {
	var a assessments.Assessment
	var tier, source string

	if err := s.Scan(
		&a.ID,
		&a.PatientID,
		&a.AssessedAt,
		&a.RecordedAt,
		&a.Vitals.SystolicBP,
		&a.Vitals.DiastolicBP,
		&a.Vitals.HeartRate,
		&a.Vitals.RespiratoryRate,
		&a.Vitals.Temperature,
		&a.Vitals.OxygenSaturation,
		&a.Vitals.ConsciousnessLevel,
		&a.Vitals.UrineOutput,
		&a.Risk.Score,
		&tier,
		&source,
		&a.RecordedBy,
		&a.Notes,
	); err != nil {
		return assessments.Assessment{}, err
	}

	a.Risk.Tier = mews.RiskTier(tier)
	a.Risk.Message = a.Risk.Tier.Message()
	a.Source = assessments.Source(source)
	return a, nil
}
