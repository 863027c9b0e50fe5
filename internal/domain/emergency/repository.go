package emergency

import "context"

type ContactRepository interface {
	// Create: si c.IsPrimary, el primario anterior de la paciente deja de
	// serlo en la misma operación. Si falla, no cambia nada.
	Create(ctx context.Context, c Contact) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Contact, error)
	ListByPatient(ctx context.Context, patientID string) ([]Contact, error)
}

type AlertRepository interface {
	Create(ctx context.Context, a Alert) error
	Update(ctx context.Context, a Alert) error
	GetByID(ctx context.Context, id string) (Alert, error)
	// ListByPatient devuelve más reciente primero (created_at desc).
	ListByPatient(ctx context.Context, patientID string, filter AlertFilter) ([]Alert, error)
}

type AlertFilter struct {
	OnlyOpen bool
	Limit    int
}

const (
	DefaultAlertLimit = 50
	MaxAlertLimit     = 200
)

func (f AlertFilter) NormalizedLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultAlertLimit
	case f.Limit > MaxAlertLimit:
		return MaxAlertLimit
	}
	return f.Limit
}
