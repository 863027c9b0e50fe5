package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"maternal-care-api/internal/domain/mews"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type scoreFlags struct {
	file   string
	format string

	systolicBP         int
	diastolicBP        int
	heartRate          int
	respiratoryRate    int
	temperature        float64
	oxygenSaturation   int
	consciousnessLevel int
	urineOutput        float64
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the MEWS score and risk tier for one set of vitals",
		Example: `  maternal-care score --file vitals.yaml
  maternal-care score --systolic-bp 120 --diastolic-bp 80 --heart-rate 75 \
    --respiratory-rate 16 --temperature 36.8 --oxygen-saturation 98 \
    --consciousness-level 4 --urine-output 1.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadVitals(cmd, f)
			if err != nil {
				return err
			}
			rec, err := mews.NewVitalsRecord(in)
			if err != nil {
				return err
			}
			risk, err := mews.Assess(rec)
			if err != nil {
				return err
			}
			return renderScore(cmd.OutOrStdout(), risk, f.format)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Archivo YAML (o JSON) con los signos vitales; '-' lee stdin")
	flags.StringVar(&f.format, "format", "text", "Formato de salida: text o json")
	flags.IntVar(&f.systolicBP, "systolic-bp", 0, "Presión sistólica (mmHg)")
	flags.IntVar(&f.diastolicBP, "diastolic-bp", 0, "Presión diastólica (mmHg)")
	flags.IntVar(&f.heartRate, "heart-rate", 0, "Frecuencia cardíaca (lpm)")
	flags.IntVar(&f.respiratoryRate, "respiratory-rate", 0, "Frecuencia respiratoria (rpm)")
	flags.Float64Var(&f.temperature, "temperature", 0, "Temperatura (°C)")
	flags.IntVar(&f.oxygenSaturation, "oxygen-saturation", 0, "Saturación de oxígeno (%)")
	flags.IntVar(&f.consciousnessLevel, "consciousness-level", 0, "Nivel de conciencia (1-4)")
	flags.Float64Var(&f.urineOutput, "urine-output", 0, "Diuresis (ml/h)")

	return cmd
}

// loadVitals lee el archivo (si hay) y luego aplica los flags explícitos.
// Un flag no pasado queda ausente: no hay defaults silenciosos.
func loadVitals(cmd *cobra.Command, f *scoreFlags) (mews.VitalsInput, error) {
	var in mews.VitalsInput

	if f.file != "" {
		var (
			raw []byte
			err error
		)
		if f.file == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(f.file)
		}
		if err != nil {
			return in, fmt.Errorf("read vitals file: %w", err)
		}
		// YAML es superset de JSON
		if err := yaml.Unmarshal(raw, &in); err != nil {
			return in, fmt.Errorf("parse vitals file: %w", err)
		}
	}

	changed := cmd.Flags().Changed
	if changed("systolic-bp") {
		in.SystolicBP = &f.systolicBP
	}
	if changed("diastolic-bp") {
		in.DiastolicBP = &f.diastolicBP
	}
	if changed("heart-rate") {
		in.HeartRate = &f.heartRate
	}
	if changed("respiratory-rate") {
		in.RespiratoryRate = &f.respiratoryRate
	}
	if changed("temperature") {
		in.Temperature = &f.temperature
	}
	if changed("oxygen-saturation") {
		in.OxygenSaturation = &f.oxygenSaturation
	}
	if changed("consciousness-level") {
		in.ConsciousnessLevel = &f.consciousnessLevel
	}
	if changed("urine-output") {
		in.UrineOutput = &f.urineOutput
	}
	return in, nil
}

func renderScore(w io.Writer, risk mews.RiskAssessment, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(risk)
	case "", "text":
		b := risk.Breakdown
		fmt.Fprintf(w, "Score: %d\n", risk.Score)
		fmt.Fprintf(w, "Risk:  %s\n", risk.Tier.Label())
		fmt.Fprintln(w, "Breakdown:")
		fmt.Fprintf(w, "  %-20s %d\n", mews.FieldSystolicBP, b.SystolicBP)
		fmt.Fprintf(w, "  %-20s %d\n", mews.FieldHeartRate, b.HeartRate)
		fmt.Fprintf(w, "  %-20s %d\n", mews.FieldRespiratoryRate, b.RespiratoryRate)
		fmt.Fprintf(w, "  %-20s %d\n", mews.FieldTemperature, b.Temperature)
		fmt.Fprintf(w, "  %-20s %d\n", mews.FieldOxygenSaturation, b.OxygenSaturation)
		fmt.Fprintf(w, "  %-20s %d\n", mews.FieldConsciousnessLevel, b.ConsciousnessLevel)
		fmt.Fprintf(w, "  %-20s %d\n", mews.FieldUrineOutput, b.UrineOutput)
		return nil
	default:
		return fmt.Errorf("unknown format %q (text|json)", format)
	}
}
