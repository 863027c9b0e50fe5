package mews

// RiskAssessment es el resultado derivado de puntuar un VitalsRecord.
// Es desechable: se recalcula desde el registro cuando haga falta.
type RiskAssessment struct {
	Score     int       `json:"score"`
	Tier      RiskTier  `json:"tier"`
	Message   string    `json:"message"`
	Breakdown Breakdown `json:"breakdown"`
}

// Assess puntúa el registro y lo clasifica. Es una función pura:
// segura para llamar concurrentemente sin sincronización.
func Assess(r VitalsRecord) (RiskAssessment, error) {
	b, err := Evaluate(r)
	if err != nil {
		return RiskAssessment{}, err
	}
	score := b.Total()
	tier := TierFor(score)
	return RiskAssessment{
		Score:     score,
		Tier:      tier,
		Message:   tier.Message(),
		Breakdown: b,
	}, nil
}

// RequiresEscalation indica si el resultado debe disparar una alerta SOS.
func (a RiskAssessment) RequiresEscalation() bool {
	return a.Tier == TierHigh
}
