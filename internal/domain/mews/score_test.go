package mews

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// baseline: todos los parámetros en banda 0.
func baseline() VitalsRecord {
	return VitalsRecord{
		SystolicBP:         120,
		DiastolicBP:        80,
		HeartRate:          75,
		RespiratoryRate:    16,
		Temperature:        37.0,
		OxygenSaturation:   98,
		ConsciousnessLevel: 4,
		UrineOutput:        1.5,
	}
}

func TestAssess_NormalBaseline(t *testing.T) {
	a, err := Assess(baseline())
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	if a.Score != 0 {
		t.Fatalf("expected score 0, got %d (%+v)", a.Score, a.Breakdown)
	}
	if a.Tier != TierNormal {
		t.Fatalf("expected NORMAL, got %s", a.Tier)
	}
	if a.Message != "" {
		t.Fatalf("expected empty message for NORMAL, got %q", a.Message)
	}
}

// Nivel de conciencia 1 cae en "< 3" y suma 3 puntos, aunque el resto esté normal.
func TestAssess_ConsciousnessLevelOneScoresThree(t *testing.T) {
	r := baseline()
	r.ConsciousnessLevel = 1

	a, err := Assess(r)
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	if a.Breakdown.ConsciousnessLevel != 3 {
		t.Fatalf("expected consciousness contribution 3, got %d", a.Breakdown.ConsciousnessLevel)
	}
	if a.Score != 3 || a.Tier != TierLow {
		t.Fatalf("expected score 3 LOW, got %d %s", a.Score, a.Tier)
	}
}

func TestAssess_HighScenario(t *testing.T) {
	r := VitalsRecord{
		SystolicBP:         85,
		DiastolicBP:        50,
		HeartRate:          135,
		RespiratoryRate:    6,
		Temperature:        39.0,
		OxygenSaturation:   89,
		ConsciousnessLevel: 2,
		UrineOutput:        0.3,
	}

	a, err := Assess(r)
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	want := Breakdown{
		SystolicBP:         3,
		HeartRate:          3,
		RespiratoryRate:    3,
		Temperature:        2,
		OxygenSaturation:   3,
		ConsciousnessLevel: 3,
		UrineOutput:        3,
	}
	if a.Breakdown != want {
		t.Fatalf("unexpected breakdown: got %+v want %+v", a.Breakdown, want)
	}
	if a.Score != 20 {
		t.Fatalf("expected score 20, got %d", a.Score)
	}
	if a.Tier != TierHigh || !a.RequiresEscalation() {
		t.Fatalf("expected HIGH with escalation, got %s", a.Tier)
	}
	if a.Message != "Immediate medical attention required" {
		t.Fatalf("unexpected message %q", a.Message)
	}
}

func TestAssess_MediumBoundary(t *testing.T) {
	r := baseline()
	r.SystolicBP = 105      // 1
	r.HeartRate = 105       // 1
	r.OxygenSaturation = 94 // 1
	r.Temperature = 38.2    // 1
	r.RespiratoryRate = 21  // 1

	a, err := Assess(r)
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	if a.Score != 5 || a.Tier != TierMedium {
		t.Fatalf("expected 5 MEDIUM, got %d %s", a.Score, a.Tier)
	}
}

func TestAssess_LowAndNormalEdges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*VitalsRecord)
		score  int
		tier   RiskTier
	}{
		{"score 4", func(r *VitalsRecord) { r.UrineOutput = 0.8; r.SystolicBP = 98 }, 4, TierLow},
		{"score 3", func(r *VitalsRecord) { r.ConsciousnessLevel = 3; r.UrineOutput = 0.7 }, 3, TierLow},
		{"score 2", func(r *VitalsRecord) { r.Temperature = 34.9 }, 2, TierNormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := baseline()
			tc.mutate(&r)
			a, err := Assess(r)
			if err != nil {
				t.Fatalf("Assess error: %v", err)
			}
			if a.Score != tc.score || a.Tier != tc.tier {
				t.Fatalf("expected %d %s, got %d %s", tc.score, tc.tier, a.Score, a.Tier)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	cases := map[int]RiskTier{
		0:  TierNormal,
		2:  TierNormal,
		3:  TierLow,
		4:  TierLow,
		5:  TierMedium,
		6:  TierMedium,
		7:  TierHigh,
		20: TierHigh,
	}
	for score, want := range cases {
		if got := TierFor(score); got != want {
			t.Errorf("TierFor(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestRiskTier_Label(t *testing.T) {
	if got := TierHigh.Label(); got != "HIGH - Immediate medical attention required" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := TierNormal.Label(); got != "NORMAL" {
		t.Fatalf("unexpected label %q", got)
	}
	if tier, ok := ParseTier(" medium "); !ok || tier != TierMedium {
		t.Fatalf("ParseTier failed: %q %v", tier, ok)
	}
	if _, ok := ParseTier("CRITICAL"); ok {
		t.Fatalf("expected CRITICAL to be rejected")
	}
}

func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"systolic 89", systolicBPPoints(89), 3},
		{"systolic 90", systolicBPPoints(90), 2},
		{"systolic 99", systolicBPPoints(99), 2},
		{"systolic 100", systolicBPPoints(100), 1},
		{"systolic 110", systolicBPPoints(110), 0},
		{"systolic 180", systolicBPPoints(180), 0},
		{"systolic 181", systolicBPPoints(181), 1},
		{"systolic 200", systolicBPPoints(200), 1},
		{"systolic 201", systolicBPPoints(201), 2},
		{"systolic 220", systolicBPPoints(220), 2},
		{"systolic 221", systolicBPPoints(221), 3},

		{"heart 39", heartRatePoints(39), 3},
		{"heart 40", heartRatePoints(40), 2},
		{"heart 50", heartRatePoints(50), 1},
		{"heart 60", heartRatePoints(60), 0},
		{"heart 100", heartRatePoints(100), 0},
		{"heart 101", heartRatePoints(101), 1},
		{"heart 111", heartRatePoints(111), 2},
		{"heart 131", heartRatePoints(131), 3},

		{"resp 7", respiratoryRatePoints(7), 3},
		{"resp 8", respiratoryRatePoints(8), 2},
		{"resp 10", respiratoryRatePoints(10), 1},
		{"resp 12", respiratoryRatePoints(12), 0},
		{"resp 20", respiratoryRatePoints(20), 0},
		{"resp 21", respiratoryRatePoints(21), 1},
		{"resp 26", respiratoryRatePoints(26), 2},
		{"resp 31", respiratoryRatePoints(31), 3},

		{"temp 34.9", temperaturePoints(34.9), 2},
		{"temp 35.0", temperaturePoints(35.0), 1},
		{"temp 35.5", temperaturePoints(35.5), 0},
		{"temp 38.0", temperaturePoints(38.0), 0},
		{"temp 38.1", temperaturePoints(38.1), 1},
		{"temp 38.5", temperaturePoints(38.5), 1},
		{"temp 38.6", temperaturePoints(38.6), 2},
		{"temp 45", temperaturePoints(45), 2},

		{"spo2 90", oxygenSaturationPoints(90), 3},
		{"spo2 91", oxygenSaturationPoints(91), 2},
		{"spo2 93", oxygenSaturationPoints(93), 1},
		{"spo2 95", oxygenSaturationPoints(95), 0},

		{"loc 1", consciousnessPoints(1), 3},
		{"loc 2", consciousnessPoints(2), 3},
		{"loc 3", consciousnessPoints(3), 1},
		{"loc 4", consciousnessPoints(4), 0},

		{"urine 0.49", urineOutputPoints(0.49), 3},
		{"urine 0.5", urineOutputPoints(0.5), 2},
		{"urine 0.99", urineOutputPoints(0.99), 2},
		{"urine 1.0", urineOutputPoints(1.0), 0},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %d want %d", tc.name, tc.got, tc.want)
		}
	}
}

// Alejar un parámetro de su banda normal nunca baja su aporte.
func TestMonotonicity(t *testing.T) {
	walk := func(name string, values []float64, points func(float64) int) {
		t.Helper()
		prev := -1
		for _, v := range values {
			p := points(v)
			if p < prev {
				t.Errorf("%s: points decreased at %v (%d < %d)", name, v, p, prev)
			}
			prev = p
		}
	}
	ints := func(f func(int) int) func(float64) int {
		return func(v float64) int { return f(int(v)) }
	}
	down := func(from, to, step float64) []float64 {
		var out []float64
		for v := from; v >= to; v -= step {
			out = append(out, v)
		}
		return out
	}
	up := func(from, to, step float64) []float64 {
		var out []float64
		for v := from; v <= to; v += step {
			out = append(out, v)
		}
		return out
	}

	walk("systolic low", down(120, 0, 1), ints(systolicBPPoints))
	walk("systolic high", up(120, 300, 1), ints(systolicBPPoints))
	walk("heart low", down(75, 0, 1), ints(heartRatePoints))
	walk("heart high", up(75, 250, 1), ints(heartRatePoints))
	walk("resp low", down(16, 0, 1), ints(respiratoryRatePoints))
	walk("resp high", up(16, 60, 1), ints(respiratoryRatePoints))
	walk("temp low", down(37.0, 30.0, 0.1), temperaturePoints)
	walk("temp high", up(37.0, 43.0, 0.1), temperaturePoints)
	walk("spo2", down(100, 0, 1), ints(oxygenSaturationPoints))
	walk("consciousness", down(4, 1, 1), ints(consciousnessPoints))
	walk("urine", down(3.0, 0, 0.05), urineOutputPoints)
}

func TestScore_DeterministicAndConcurrent(t *testing.T) {
	r := baseline()
	r.HeartRate = 120
	r.UrineOutput = 0.4

	first, err := Score(r)
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Score(r)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != first {
			t.Fatalf("call %d: got %d want %d", i, got, first)
		}
	}
	if r.HeartRate != 120 || r.UrineOutput != 0.4 {
		t.Fatalf("record was mutated: %+v", r)
	}
}

func TestScore_RejectsNonFinite(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*VitalsRecord)
		field  string
	}{
		{"nan temperature", func(r *VitalsRecord) { r.Temperature = math.NaN() }, FieldTemperature},
		{"inf temperature", func(r *VitalsRecord) { r.Temperature = math.Inf(1) }, FieldTemperature},
		{"nan urine", func(r *VitalsRecord) { r.UrineOutput = math.NaN() }, FieldUrineOutput},
		{"negative urine", func(r *VitalsRecord) { r.UrineOutput = -1 }, FieldUrineOutput},
		{"consciousness 0", func(r *VitalsRecord) { r.ConsciousnessLevel = 0 }, FieldConsciousnessLevel},
		{"consciousness 5", func(r *VitalsRecord) { r.ConsciousnessLevel = 5 }, FieldConsciousnessLevel},
		{"spo2 101", func(r *VitalsRecord) { r.OxygenSaturation = 101 }, FieldOxygenSaturation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := baseline()
			tc.mutate(&r)

			_, err := Score(r)
			if !errors.Is(err, ErrInvalidVitals) {
				t.Fatalf("expected ErrInvalidVitals, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(verr.Problems) != 1 || verr.Problems[0].Field != tc.field {
				t.Fatalf("expected single problem on %s, got %+v", tc.field, verr.Problems)
			}
		})
	}
}
