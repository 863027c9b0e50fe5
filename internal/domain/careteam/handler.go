package careteam

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"maternal-care-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// La paciente administra su equipo de cuidado
	r.Route("/care-team", func(cr chi.Router) {
		cr.Post("/", inviteHandler(svc))
		cr.Get("/", listMyTeamHandler(svc))

		cr.Post("/{grantID}/accept", acceptHandler(svc))
		cr.Post("/{grantID}/revoke", revokeHandler(svc))
	})

	// Cuidador: grants recibidos
	r.Get("/me/care-grants", listMyGrantsHandler(svc))
}

// inviteRequest es el cuerpo para invitar a un cuidador.
type inviteRequest struct {
	CaregiverUserID string  `json:"caregiver_user_id"`
	Scopes          []Scope `json:"scopes"`
}

// grantResponse representa un grant del equipo de cuidado.
type grantResponse struct {
	ID              string     `json:"id"`
	PatientUserID   string     `json:"patient_user_id"`
	CaregiverUserID string     `json:"caregiver_user_id"`
	Scopes          []Scope    `json:"scopes"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	RevokedAt       *time.Time `json:"revoked_at,omitempty"`
}

// inviteHandler godoc
// @Summary Invitar cuidador
// @Description La paciente autenticada invita a un cuidador a ver/actuar sobre su historial. Sin scopes se otorga `assessments:read` y `alerts:read`. Re-invitar actualiza los scopes.
// @Tags care-team
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body inviteRequest true "Cuidador y scopes"
// @Success 201 {object} grantResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /care-team [post]
func inviteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req inviteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.CaregiverUserID) == "" {
			http.Error(w, "caregiver_user_id required", http.StatusBadRequest)
			return
		}

		g, err := svc.Invite(r.Context(), InviteInput{
			PatientUserID:   claims.UserID,
			CaregiverUserID: req.CaregiverUserID,
			Scopes:          req.Scopes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toGrantResponse(g))
	}
}

// listMyTeamHandler godoc
// @Summary Listar equipo de cuidado
// @Description Grants otorgados por la paciente autenticada.
// @Tags care-team
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} grantResponse
// @Failure 401 {string} string "unauthorized"
// @Router /care-team [get]
func listMyTeamHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByPatient(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toGrantResponses(items))
	}
}

// listMyGrantsHandler godoc
// @Summary Grants recibidos
// @Description Grants donde el usuario autenticado es cuidador. `status` acepta CSV (invited,active,revoked).
// @Tags care-team
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param status query string false "Filtro CSV de status"
// @Success 200 {array} grantResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/care-grants [get]
func listMyGrantsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		allowed := parseStatusFilter(r.URL.Query().Get("status"))

		items, err := svc.ListByCaregiver(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if len(allowed) > 0 {
			filtered := make([]Grant, 0, len(items))
			for _, g := range items {
				if _, ok := allowed[g.Status]; ok {
					filtered = append(filtered, g)
				}
			}
			items = filtered
		}

		writeJSON(w, http.StatusOK, toGrantResponses(items))
	}
}

// acceptHandler godoc
// @Summary Aceptar invitación
// @Tags care-team
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param grantID path string true "ID del grant"
// @Success 200 {object} grantResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "invalid state"
// @Router /care-team/{grantID}/accept [post]
func acceptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		g, err := svc.Accept(r.Context(), chi.URLParam(r, "grantID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toGrantResponse(g))
	}
}

// revokeHandler godoc
// @Summary Revocar acceso
// @Tags care-team
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param grantID path string true "ID del grant"
// @Success 200 {object} grantResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /care-team/{grantID}/revoke [post]
func revokeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		g, err := svc.Revoke(r.Context(), chi.URLParam(r, "grantID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toGrantResponse(g))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toGrantResponse(g Grant) grantResponse {
	return grantResponse{
		ID:              g.ID,
		PatientUserID:   g.PatientUserID,
		CaregiverUserID: g.CaregiverUserID,
		Scopes:          g.Scopes,
		Status:          g.Status,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
		RevokedAt:       g.RevokedAt,
	}
}

func toGrantResponses(items []Grant) []grantResponse {
	out := make([]grantResponse, 0, len(items))
	for _, g := range items {
		out = append(out, toGrantResponse(g))
	}
	return out
}

func parseStatusFilter(raw string) map[Status]struct{} {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := map[Status]struct{}{}
	for _, p := range strings.Split(raw, ",") {
		s := Status(strings.TrimSpace(p))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}

// writeJSON duplicado por módulo (ver assessments/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
