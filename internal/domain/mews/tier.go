package mews

import "strings"

// RiskTier es la categoría discreta derivada del score.
// @Enum NORMAL, LOW, MEDIUM, HIGH
type RiskTier string

const (
	TierNormal RiskTier = "NORMAL"
	TierLow    RiskTier = "LOW"
	TierMedium RiskTier = "MEDIUM"
	TierHigh   RiskTier = "HIGH"
)

// TierFor mapea un score a su tier, de mayor a menor.
func TierFor(score int) RiskTier {
	switch {
	case score >= 7:
		return TierHigh
	case score >= 5:
		return TierMedium
	case score >= 3:
		return TierLow
	}
	return TierNormal
}

// Message es la indicación que acompaña al tier ("" para NORMAL).
func (t RiskTier) Message() string {
	switch t {
	case TierHigh:
		return "Immediate medical attention required"
	case TierMedium:
		return "Consult healthcare provider soon"
	case TierLow:
		return "Monitor closely"
	}
	return ""
}

// Label es el texto que se muestra en pantalla, ej: "HIGH - Immediate medical attention required".
func (t RiskTier) Label() string {
	if msg := t.Message(); msg != "" {
		return string(t) + " - " + msg
	}
	return string(t)
}

func (t RiskTier) Valid() bool {
	switch t {
	case TierNormal, TierLow, TierMedium, TierHigh:
		return true
	}
	return false
}

// ParseTier acepta el tier sin importar mayúsculas ("high", "HIGH").
func ParseTier(s string) (RiskTier, bool) {
	t := RiskTier(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}
