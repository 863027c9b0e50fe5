package mews

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidVitals es el único tipo de error del motor.
var ErrInvalidVitals = errors.New("invalid vitals")

type FieldProblem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lista los campos ausentes, no numéricos o no finitos.
// errors.Is(err, ErrInvalidVitals) es true.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return ErrInvalidVitals.Error()
	}
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Field, p.Reason))
	}
	return ErrInvalidVitals.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidVitals }

// Validate verifica que todos los valores sean finitos y estén dentro del
// dominio de cada medida. No corrige nada: o el registro es válido o no se puntúa.
func (r VitalsRecord) Validate() error {
	if problems := r.problems(nil); len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// problems revisa solo los campos marcados en only (nil = todos).
func (r VitalsRecord) problems(only map[string]bool) []FieldProblem {
	var out []FieldProblem
	check := func(field string, bad bool, reason string) {
		if only != nil && !only[field] {
			return
		}
		if bad {
			out = append(out, FieldProblem{Field: field, Reason: reason})
		}
	}

	check(FieldSystolicBP, r.SystolicBP < 0, "must be >= 0")
	check(FieldDiastolicBP, r.DiastolicBP < 0, "must be >= 0")
	check(FieldHeartRate, r.HeartRate < 0, "must be >= 0")
	check(FieldRespiratoryRate, r.RespiratoryRate < 0, "must be >= 0")
	check(FieldTemperature, !isFinite(r.Temperature), "must be a finite number")
	check(FieldOxygenSaturation, r.OxygenSaturation < 0 || r.OxygenSaturation > 100, "must be between 0 and 100")
	check(FieldConsciousnessLevel, r.ConsciousnessLevel < 1 || r.ConsciousnessLevel > 4, "must be between 1 and 4")

	switch {
	case !isFinite(r.UrineOutput):
		check(FieldUrineOutput, true, "must be a finite number")
	case r.UrineOutput < 0:
		check(FieldUrineOutput, true, "must be >= 0")
	}

	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
