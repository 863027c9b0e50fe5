package mews

// Breakdown guarda el aporte de cada parámetro al score.
// Los siete aportes son independientes: el total es su suma.
type Breakdown struct {
	SystolicBP         int `json:"systolic_bp"`
	HeartRate          int `json:"heart_rate"`
	RespiratoryRate    int `json:"respiratory_rate"`
	Temperature        int `json:"temperature"`
	OxygenSaturation   int `json:"oxygen_saturation"`
	ConsciousnessLevel int `json:"consciousness_level"`
	UrineOutput        int `json:"urine_output"`
}

func (b Breakdown) Total() int {
	return b.SystolicBP +
		b.HeartRate +
		b.RespiratoryRate +
		b.Temperature +
		b.OxygenSaturation +
		b.ConsciousnessLevel +
		b.UrineOutput
}

// Score devuelve el MEWS compuesto del registro (>= 0).
func Score(r VitalsRecord) (int, error) {
	b, err := Evaluate(r)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}

// Evaluate valida el registro y calcula el aporte de cada parámetro.
// La presión diastólica no puntúa.
func Evaluate(r VitalsRecord) (Breakdown, error) {
	if err := r.Validate(); err != nil {
		return Breakdown{}, err
	}
	return Breakdown{
		SystolicBP:         systolicBPPoints(r.SystolicBP),
		HeartRate:          heartRatePoints(r.HeartRate),
		RespiratoryRate:    respiratoryRatePoints(r.RespiratoryRate),
		Temperature:        temperaturePoints(r.Temperature),
		OxygenSaturation:   oxygenSaturationPoints(r.OxygenSaturation),
		ConsciousnessLevel: consciousnessPoints(r.ConsciousnessLevel),
		UrineOutput:        urineOutputPoints(r.UrineOutput),
	}, nil
}

// Bandas de más severa a menos severa; gana la primera que matchea.
// Comparaciones estrictas: un valor justo en el límite cae en la banda menor.

func systolicBPPoints(v int) int {
	switch {
	case v < 90 || v > 220:
		return 3
	case v < 100 || v > 200:
		return 2
	case v < 110 || v > 180:
		return 1
	}
	return 0
}

func heartRatePoints(v int) int {
	switch {
	case v < 40 || v > 130:
		return 3
	case v < 50 || v > 110:
		return 2
	case v < 60 || v > 100:
		return 1
	}
	return 0
}

func respiratoryRatePoints(v int) int {
	switch {
	case v < 8 || v > 30:
		return 3
	case v < 10 || v > 25:
		return 2
	case v < 12 || v > 20:
		return 1
	}
	return 0
}

// Temperatura aporta como máximo 2.
func temperaturePoints(v float64) int {
	switch {
	case v < 35.0 || v > 38.5:
		return 2
	case v < 35.5 || v > 38.0:
		return 1
	}
	return 0
}

func oxygenSaturationPoints(v int) int {
	switch {
	case v < 91:
		return 3
	case v < 93:
		return 2
	case v < 95:
		return 1
	}
	return 0
}

// Escala tal cual la usa la historia clínica: < 3 => 3, == 3 => 1, 4 => 0.
// Ojo: si 1 significa "alerta" (como dice el formulario) esto puntúa al
// revés; se deja así hasta que clínica confirme la escala.
func consciousnessPoints(v int) int {
	switch {
	case v < 3:
		return 3
	case v == 3:
		return 1
	}
	return 0
}

func urineOutputPoints(v float64) int {
	switch {
	case v < 0.5:
		return 3
	case v < 1.0:
		return 2
	}
	return 0
}
