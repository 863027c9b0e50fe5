package mews

import (
	"errors"
	"math"
	"testing"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestNewVitalsRecord_AllPresent(t *testing.T) {
	in := baseline().Input()

	rec, err := NewVitalsRecord(in)
	if err != nil {
		t.Fatalf("NewVitalsRecord error: %v", err)
	}
	if rec != baseline() {
		t.Fatalf("round trip mismatch: %+v", rec)
	}
}

func TestNewVitalsRecord_MissingFieldsAreNotZero(t *testing.T) {
	in := VitalsInput{
		SystolicBP:  intp(120),
		HeartRate:   intp(80),
		Temperature: floatp(math.NaN()),
	}

	_, err := NewVitalsRecord(in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got := map[string]string{}
	for _, p := range verr.Problems {
		got[p.Field] = p.Reason
	}

	for _, f := range []string{
		FieldDiastolicBP,
		FieldRespiratoryRate,
		FieldOxygenSaturation,
		FieldConsciousnessLevel,
		FieldUrineOutput,
	} {
		if got[f] != "required" {
			t.Errorf("expected %s required, got %q", f, got[f])
		}
	}
	if got[FieldTemperature] != "must be a finite number" {
		t.Errorf("expected temperature non-finite problem, got %q", got[FieldTemperature])
	}
	if _, ok := got[FieldSystolicBP]; ok {
		t.Errorf("systolic_bp should be valid")
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Problems: []FieldProblem{
		{Field: "heart_rate", Reason: "required"},
		{Field: "temperature", Reason: "must be a finite number"},
	}}
	want := "invalid vitals: heart_rate: required; temperature: must be a finite number"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
}
