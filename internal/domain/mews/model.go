package mews

// VitalsRecord es una toma de signos vitales de una paciente en un instante.
// Es un valor: se pasa por copia y el scoring nunca lo modifica.
type VitalsRecord struct {
	SystolicBP         int     // mmHg
	DiastolicBP        int     // mmHg, informativo (no puntúa)
	HeartRate          int     // latidos/min
	RespiratoryRate    int     // respiraciones/min
	Temperature        float64 // °C
	OxygenSaturation   int     // %
	ConsciousnessLevel int     // ordinal 1..4
	UrineOutput        float64 // ml/hora
}

// VitalsInput es la forma "cruda" de un VitalsRecord tal como llega de un
// formulario, JSON, MQTT o YAML. Punteros: nil = campo no enviado.
// Ningún campo tiene default; un campo ausente es un error de validación.
type VitalsInput struct {
	SystolicBP         *int     `json:"systolic_bp" yaml:"systolic_bp"`
	DiastolicBP        *int     `json:"diastolic_bp" yaml:"diastolic_bp"`
	HeartRate          *int     `json:"heart_rate" yaml:"heart_rate"`
	RespiratoryRate    *int     `json:"respiratory_rate" yaml:"respiratory_rate"`
	Temperature        *float64 `json:"temperature" yaml:"temperature"`
	OxygenSaturation   *int     `json:"oxygen_saturation" yaml:"oxygen_saturation"`
	ConsciousnessLevel *int     `json:"consciousness_level" yaml:"consciousness_level"`
	UrineOutput        *float64 `json:"urine_output" yaml:"urine_output"`
}

// Nombres de campo tal como se exponen hacia afuera (forms, JSON, errores).
const (
	FieldSystolicBP         = "systolic_bp"
	FieldDiastolicBP        = "diastolic_bp"
	FieldHeartRate          = "heart_rate"
	FieldRespiratoryRate    = "respiratory_rate"
	FieldTemperature        = "temperature"
	FieldOxygenSaturation   = "oxygen_saturation"
	FieldConsciousnessLevel = "consciousness_level"
	FieldUrineOutput        = "urine_output"
)

// NewVitalsRecord convierte un VitalsInput en VitalsRecord.
// Reporta TODOS los campos faltantes o inválidos en un solo ValidationError.
func NewVitalsRecord(in VitalsInput) (VitalsRecord, error) {
	var missing []FieldProblem
	requireInt := func(field string, v *int) int {
		if v == nil {
			missing = append(missing, FieldProblem{Field: field, Reason: "required"})
			return 0
		}
		return *v
	}
	requireFloat := func(field string, v *float64) float64 {
		if v == nil {
			missing = append(missing, FieldProblem{Field: field, Reason: "required"})
			return 0
		}
		return *v
	}

	rec := VitalsRecord{
		SystolicBP:         requireInt(FieldSystolicBP, in.SystolicBP),
		DiastolicBP:        requireInt(FieldDiastolicBP, in.DiastolicBP),
		HeartRate:          requireInt(FieldHeartRate, in.HeartRate),
		RespiratoryRate:    requireInt(FieldRespiratoryRate, in.RespiratoryRate),
		Temperature:        requireFloat(FieldTemperature, in.Temperature),
		OxygenSaturation:   requireInt(FieldOxygenSaturation, in.OxygenSaturation),
		ConsciousnessLevel: requireInt(FieldConsciousnessLevel, in.ConsciousnessLevel),
		UrineOutput:        requireFloat(FieldUrineOutput, in.UrineOutput),
	}

	if len(missing) > 0 {
		// Sumamos también los problemas de dominio de los campos presentes.
		problems := append(missing, rec.problems(presentFields(in))...)
		return VitalsRecord{}, &ValidationError{Problems: problems}
	}

	if err := rec.Validate(); err != nil {
		return VitalsRecord{}, err
	}
	return rec, nil
}

// Input devuelve el VitalsInput equivalente (todos los campos presentes).
func (r VitalsRecord) Input() VitalsInput {
	return VitalsInput{
		SystolicBP:         &r.SystolicBP,
		DiastolicBP:        &r.DiastolicBP,
		HeartRate:          &r.HeartRate,
		RespiratoryRate:    &r.RespiratoryRate,
		Temperature:        &r.Temperature,
		OxygenSaturation:   &r.OxygenSaturation,
		ConsciousnessLevel: &r.ConsciousnessLevel,
		UrineOutput:        &r.UrineOutput,
	}
}

func presentFields(in VitalsInput) map[string]bool {
	return map[string]bool{
		FieldSystolicBP:         in.SystolicBP != nil,
		FieldDiastolicBP:        in.DiastolicBP != nil,
		FieldHeartRate:          in.HeartRate != nil,
		FieldRespiratoryRate:    in.RespiratoryRate != nil,
		FieldTemperature:        in.Temperature != nil,
		FieldOxygenSaturation:   in.OxygenSaturation != nil,
		FieldConsciousnessLevel: in.ConsciousnessLevel != nil,
		FieldUrineOutput:        in.UrineOutput != nil,
	}
}
