package fanout

import (
	"context"
	"errors"
	"fmt"

	"maternal-care-api/internal/platform/logger"
	"maternal-care-api/internal/ports/notify"
)

// Named asocia un canal con un nombre para logs.
type Named struct {
	Name     string
	Notifier notify.Notifier
}

// Notifier entrega la alerta a todos los canales. Un canal que falla no
// corta a los demás; los errores se juntan.
type Notifier struct {
	targets []Named
	log     logger.Logger
}

func New(log logger.Logger, targets ...Named) *Notifier {
	if log == nil {
		log = logger.NewNop()
	}
	out := make([]Named, 0, len(targets))
	for _, t := range targets {
		if t.Notifier != nil {
			out = append(out, t)
		}
	}
	return &Notifier{targets: out, log: log}
}

func (n *Notifier) Len() int { return len(n.targets) }

func (n *Notifier) Notify(ctx context.Context, a notify.Alert) error {
	var errs []error
	for _, t := range n.targets {
		if err := t.Notifier.Notify(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, err))
			continue
		}
		n.log.Debug("sos alert delivered", map[string]any{
			"channel":  t.Name,
			"alert_id": a.ID,
		})
	}
	return errors.Join(errs...)
}

// LogNotifier deja la alerta en el log. Canal mínimo cuando no hay Redis ni webhook.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(ctx context.Context, a notify.Alert) error {
	fields := map[string]any{
		"alert_id":   a.ID,
		"patient_id": a.PatientID,
		"type":       a.Type,
		"message":    a.Message,
		"contacts":   len(a.Contacts),
	}
	if a.Score != nil {
		fields["score"] = *a.Score
		fields["tier"] = a.Tier
	}
	l.log.Warn("SOS", fields)
	return nil
}
