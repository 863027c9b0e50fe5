package assessments

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Assessments"

// ExportHeader es el orden de columnas del XLSX de historial.
var ExportHeader = []string{
	"Assessed At",
	"Score",
	"Risk Level",
	"Systolic BP",
	"Diastolic BP",
	"Heart Rate",
	"Respiratory Rate",
	"Temperature",
	"Oxygen Saturation",
	"Consciousness Level",
	"Urine Output",
	"Source",
	"Recorded By",
	"Notes",
}

var exportColumnWidths = []float64{20, 8, 46, 12, 12, 12, 16, 12, 18, 20, 14, 10, 38, 40}

// WriteXLSX escribe el historial (en el orden recibido) como planilla.
func WriteXLSX(w io.Writer, items []Assessment) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(exportSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(exportSheet)
	if err != nil {
		return fmt.Errorf("sheet index: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(ExportHeader), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, width := range exportColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(exportSheet, col, col, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	for i, a := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		v := a.Vitals
		row := []any{
			a.AssessedAt.UTC().Format(time.RFC3339),
			a.Risk.Score,
			a.Risk.Tier.Label(),
			v.SystolicBP,
			v.DiastolicBP,
			v.HeartRate,
			v.RespiratoryRate,
			v.Temperature,
			v.OxygenSaturation,
			v.ConsciousnessLevel,
			v.UrineOutput,
			string(a.Source),
			a.RecordedBy,
			a.Notes,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
