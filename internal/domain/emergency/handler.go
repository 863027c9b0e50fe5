package emergency

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"maternal-care-api/internal/domain/careteam"
	"maternal-care-api/internal/middleware"
	"maternal-care-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, team *careteam.Service) {
	r.Route("/patients/{patientID}/contacts", func(cr chi.Router) {
		cr.Post("/", addContactHandler(svc))
		cr.Get("/", listContactsHandler(svc, team))
		cr.Delete("/{contactID}", deleteContactHandler(svc))
	})

	r.Route("/patients/{patientID}/alerts", func(ar chi.Router) {
		ar.Post("/", raiseAlertHandler(svc))
		ar.Get("/", listAlertsHandler(svc, team))
		ar.Post("/{alertID}/resolve", resolveAlertHandler(svc, team))
	})
}

// contactRequest es el cuerpo para agregar un contacto de emergencia.
type contactRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phone_number"`
	IsPrimary    bool   `json:"is_primary"`
}

type contactResponse struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	PhoneNumber  string    `json:"phone_number"`
	IsPrimary    bool      `json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
}

// raiseAlertRequest es el cuerpo del botón SOS.
type raiseAlertRequest struct {
	AlertType AlertType `json:"alert_type" enums:"medical,personal,other"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
}

type alertResponse struct {
	ID           string     `json:"id"`
	PatientID    string     `json:"patient_id"`
	AlertType    AlertType  `json:"alert_type"`
	Location     string     `json:"location,omitempty"`
	Message      string     `json:"message"`
	AssessmentID string     `json:"assessment_id,omitempty"`
	Score        *int       `json:"score,omitempty"`
	RaisedBy     string     `json:"raised_by"`
	CreatedAt    time.Time  `json:"created_at"`
	IsResolved   bool       `json:"is_resolved"`
	ResolvedAt   *time.Time `json:"resolved_time,omitempty"`
	ResolvedBy   string     `json:"resolved_by,omitempty"`
}

// addContactHandler godoc
// @Summary Agregar contacto de emergencia
// @Description Solo la paciente. Si `is_primary` es true, el primario anterior deja de serlo.
// @Tags emergency
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param payload body contactRequest true "Contacto"
// @Success 201 {object} contactResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /patients/{patientID}/contacts [post]
func addContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, patientID, ok := ownerOnly(w, r)
		if !ok {
			return
		}

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.AddContact(r.Context(), patientID, ContactInput{
			Name:         req.Name,
			Relationship: req.Relationship,
			PhoneNumber:  req.PhoneNumber,
			IsPrimary:    req.IsPrimary,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toContactResponse(c))
	}
}

// listContactsHandler godoc
// @Summary Listar contactos de emergencia
// @Description Primario primero. Un cuidador necesita scope `contacts:read`.
// @Tags emergency
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Success 200 {array} contactResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /patients/{patientID}/contacts [get]
func listContactsHandler(svc *Service, team *careteam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, patientID, ok := authorizePatient(w, r, team, careteam.ScopeContactsRead)
		if !ok {
			return
		}

		items, err := svc.ListContacts(r.Context(), patientID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		out := make([]contactResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toContactResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deleteContactHandler godoc
// @Summary Eliminar contacto de emergencia
// @Tags emergency
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param contactID path string true "ID del contacto"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /patients/{patientID}/contacts/{contactID} [delete]
func deleteContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, patientID, ok := ownerOnly(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteContact(r.Context(), patientID, chi.URLParam(r, "contactID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// raiseAlertHandler godoc
// @Summary Enviar SOS
// @Description Solo la paciente. Registra la alerta y notifica a los canales configurados.
// @Tags emergency
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param payload body raiseAlertRequest true "Tipo, ubicación y mensaje"
// @Success 201 {object} alertResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /patients/{patientID}/alerts [post]
func raiseAlertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, patientID, ok := ownerOnly(w, r)
		if !ok {
			return
		}

		var req raiseAlertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.RaiseAlert(r.Context(), RaiseInput{
			PatientID: patientID,
			RaisedBy:  claims.UserID,
			Type:      req.AlertType,
			Location:  req.Location,
			Message:   req.Message,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAlertResponse(a))
	}
}

// listAlertsHandler godoc
// @Summary Listar alertas SOS
// @Description Más reciente primero. Un cuidador necesita scope `alerts:read`.
// @Tags emergency
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param open query bool false "Solo alertas sin resolver"
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Success 200 {array} alertResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /patients/{patientID}/alerts [get]
func listAlertsHandler(svc *Service, team *careteam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, patientID, ok := authorizePatient(w, r, team, careteam.ScopeAlertsRead)
		if !ok {
			return
		}

		filter := AlertFilter{}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Limit = n
			}
		}
		if v, err := strconv.ParseBool(r.URL.Query().Get("open")); err == nil {
			filter.OnlyOpen = v
		}

		items, err := svc.ListAlerts(r.Context(), patientID, filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		out := make([]alertResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAlertResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// resolveAlertHandler godoc
// @Summary Resolver alerta SOS
// @Description La paciente o un cuidador con scope `alerts:resolve`.
// @Tags emergency
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param alertID path string true "ID de la alerta"
// @Success 200 {object} alertResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /patients/{patientID}/alerts/{alertID}/resolve [post]
func resolveAlertHandler(svc *Service, team *careteam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, patientID, ok := authorizePatient(w, r, team, careteam.ScopeAlertsResolve)
		if !ok {
			return
		}

		a, err := svc.ResolveAlert(r.Context(), patientID, chi.URLParam(r, "alertID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAlertResponse(a))
	}
}

// ownerOnly: la operación es exclusiva de la paciente.
func ownerOnly(w http.ResponseWriter, r *http.Request) (auth.Claims, string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, "", false
	}
	patientID := middleware.ResolvePatientID(claims, chi.URLParam(r, "patientID"))
	if patientID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return auth.Claims{}, "", false
	}
	return claims, patientID, true
}

func authorizePatient(w http.ResponseWriter, r *http.Request, team *careteam.Service, scope careteam.Scope) (auth.Claims, string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, "", false
	}
	patientID := middleware.ResolvePatientID(claims, chi.URLParam(r, "patientID"))
	if err := team.Authorize(r.Context(), patientID, claims.UserID, scope); err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return auth.Claims{}, "", false
	}
	return claims, patientID, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toContactResponse(c Contact) contactResponse {
	return contactResponse{
		ID:           c.ID,
		PatientID:    c.PatientID,
		Name:         c.Name,
		Relationship: c.Relationship,
		PhoneNumber:  c.PhoneNumber,
		IsPrimary:    c.IsPrimary,
		CreatedAt:    c.CreatedAt,
	}
}

func toAlertResponse(a Alert) alertResponse {
	return alertResponse{
		ID:           a.ID,
		PatientID:    a.PatientID,
		AlertType:    a.Type,
		Location:     a.Location,
		Message:      a.Message,
		AssessmentID: a.AssessmentID,
		Score:        a.Score,
		RaisedBy:     a.RaisedBy,
		CreatedAt:    a.CreatedAt,
		IsResolved:   a.Resolved,
		ResolvedAt:   a.ResolvedAt,
		ResolvedBy:   a.ResolvedBy,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
