package assessments

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"maternal-care-api/internal/domain/careteam"
	"maternal-care-api/internal/domain/mews"
	"maternal-care-api/internal/middleware"
	"maternal-care-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, team *careteam.Service) {
	// Scoring sin persistencia (no requiere identidad)
	r.Post("/mews/score", scoreHandler())

	r.Route("/patients/{patientID}/assessments", func(ar chi.Router) {
		ar.Post("/", createAssessmentHandler(svc, team))
		ar.Get("/", listAssessmentsHandler(svc, team))
		ar.Get("/export", exportAssessmentsHandler(svc, team))
		ar.Get("/{assessmentID}", getAssessmentHandler(svc, team))
	})
}

// vitalsPayload son los signos vitales tal como se guardaron.
type vitalsPayload struct {
	SystolicBP         int     `json:"systolic_bp"`
	DiastolicBP        int     `json:"diastolic_bp"`
	HeartRate          int     `json:"heart_rate"`
	RespiratoryRate    int     `json:"respiratory_rate"`
	Temperature        float64 `json:"temperature"`
	OxygenSaturation   int     `json:"oxygen_saturation"`
	ConsciousnessLevel int     `json:"consciousness_level"`
	UrineOutput        float64 `json:"urine_output"`
}

// createAssessmentRequest: vitales + metadatos opcionales.
type createAssessmentRequest struct {
	mews.VitalsInput
	AssessedAt string `json:"assessed_at"` // RFC3339, opcional
	Notes      string `json:"notes"`
}

// scoreResponse es el resultado del motor MEWS.
type scoreResponse struct {
	Score     int            `json:"score"`
	Tier      mews.RiskTier  `json:"tier"`
	Message   string         `json:"message"`
	RiskLevel string         `json:"risk_level"`
	Breakdown mews.Breakdown `json:"breakdown"`
}

// assessmentResponse representa una evaluación persistida.
type assessmentResponse struct {
	ID         string        `json:"id"`
	PatientID  string        `json:"patient_id"`
	AssessedAt time.Time     `json:"assessed_at"`
	RecordedAt time.Time     `json:"recorded_at"`
	Source     Source        `json:"source"`
	RecordedBy string        `json:"recorded_by"`
	Notes      string        `json:"notes,omitempty"`
	Vitals     vitalsPayload `json:"vitals"`
	scoreResponse
}

// validationResponse lista los campos rechazados.
type validationResponse struct {
	Error    string              `json:"error"`
	Problems []mews.FieldProblem `json:"problems"`
}

// scoreHandler godoc
// @Summary Calcular MEWS
// @Description Calcula el score MEWS y el tier de riesgo sin guardar nada. Acepta JSON o campos de formulario (systolic_bp, diastolic_bp, heart_rate, respiratory_rate, temperature, oxygen_saturation, consciousness_level, urine_output). Todos los campos son obligatorios.
// @Tags mews
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param payload body mews.VitalsInput true "Signos vitales"
// @Success 200 {object} scoreResponse
// @Failure 400 {object} validationResponse
// @Router /mews/score [post]
func scoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCreateRequest(r)
		if err != nil {
			writeDecodeError(w, err)
			return
		}

		rec, err := mews.NewVitalsRecord(req.VitalsInput)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		risk, err := mews.Assess(rec)
		if err != nil {
			writeDecodeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toScoreResponse(risk))
	}
}

// createAssessmentHandler godoc
// @Summary Registrar evaluación MEWS
// @Description Puntúa y guarda una toma de signos vitales. La paciente siempre puede; un cuidador necesita scope `assessments:create`. Si el tier es HIGH se levanta una alerta SOS automáticamente. `patientID` acepta `me`.
// @Tags assessments
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param payload body createAssessmentRequest true "Signos vitales; assessed_at en RFC3339 (opcional)"
// @Success 201 {object} assessmentResponse
// @Failure 400 {object} validationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /patients/{patientID}/assessments [post]
func createAssessmentHandler(svc *Service, team *careteam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, patientID, ok := authorizePatient(w, r, team, careteam.ScopeAssessmentsCreate)
		if !ok {
			return
		}

		req, err := decodeCreateRequest(r)
		if err != nil {
			writeDecodeError(w, err)
			return
		}

		var assessedAt time.Time
		if v := strings.TrimSpace(req.AssessedAt); v != "" {
			assessedAt, err = time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "assessed_at must be RFC3339", http.StatusBadRequest)
				return
			}
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PatientID:  patientID,
			RecordedBy: claims.UserID,
			Source:     SourceManual,
			AssessedAt: assessedAt,
			Notes:      req.Notes,
			Vitals:     req.VitalsInput,
		})
		if err != nil {
			var verr *mews.ValidationError
			switch {
			case errors.As(err, &verr):
				writeDecodeError(w, err)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAssessmentResponse(a))
	}
}

// listAssessmentsHandler godoc
// @Summary Historial de evaluaciones
// @Description Lista las evaluaciones de la paciente, más reciente primero. La paciente siempre puede; un cuidador necesita scope `assessments:read`.
// @Tags assessments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param from query string false "assessed_at mínimo (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "assessed_at máximo (RFC3339 o YYYY-MM-DD)"
// @Param tier query string false "CSV de tiers (NORMAL,LOW,MEDIUM,HIGH)"
// @Param limit query int false "Máximo a devolver (1-500). Por defecto 50"
// @Success 200 {array} assessmentResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /patients/{patientID}/assessments [get]
func listAssessmentsHandler(svc *Service, team *careteam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, patientID, ok := authorizePatient(w, r, team, careteam.ScopeAssessmentsRead)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPatient(r.Context(), patientID, filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]assessmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAssessmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// exportAssessmentsHandler godoc
// @Summary Exportar historial (XLSX)
// @Description Mismos filtros que el listado; devuelve una planilla Excel.
// @Tags assessments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Success 200 {file} file
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /patients/{patientID}/assessments/export [get]
func exportAssessmentsHandler(svc *Service, team *careteam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, patientID, ok := authorizePatient(w, r, team, careteam.ScopeAssessmentsRead)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("limit") == "" {
			filter.Limit = MaxListLimit
		}

		items, err := svc.ListByPatient(r.Context(), patientID, filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := WriteXLSX(&buf, items); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=mews-%s.xlsx", patientID))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// getAssessmentHandler godoc
// @Summary Obtener evaluación
// @Tags assessments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID de la paciente o me"
// @Param assessmentID path string true "ID de la evaluación"
// @Success 200 {object} assessmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "assessment not found"
// @Router /patients/{patientID}/assessments/{assessmentID} [get]
func getAssessmentHandler(svc *Service, team *careteam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, patientID, ok := authorizePatient(w, r, team, careteam.ScopeAssessmentsRead)
		if !ok {
			return
		}

		a, err := svc.GetByID(r.Context(), patientID, chi.URLParam(r, "assessmentID"))
		if err != nil {
			http.Error(w, "assessment not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAssessmentResponse(a))
	}
}

// authorizePatient resuelve la paciente de la URL y valida permisos:
// la paciente siempre pasa; un cuidador necesita grant activo con scope.
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

// errBadJSON distingue un body ilegible de un problema de campos.
var errBadJSON = errors.New("invalid json")

// decodeCreateRequest acepta JSON o formulario (application/x-www-form-urlencoded, multipart).
func decodeCreateRequest(r *http.Request) (createAssessmentRequest, error) {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		return decodeForm(r)
	}

	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return createAssessmentRequest{}, errBadJSON
	}
	return req, nil
}

func decodeForm(r *http.Request) (createAssessmentRequest, error) {
	if strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return createAssessmentRequest{}, errBadJSON
		}
	} else if err := r.ParseForm(); err != nil {
		return createAssessmentRequest{}, errBadJSON
	}

	var problems []mews.FieldProblem
	intField := func(name string) *int {
		raw := strings.TrimSpace(r.PostForm.Get(name))
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, mews.FieldProblem{Field: name, Reason: "must be an integer"})
			return nil
		}
		return &n
	}
	floatField := func(name string) *float64 {
		raw := strings.TrimSpace(r.PostForm.Get(name))
		if raw == "" {
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			problems = append(problems, mews.FieldProblem{Field: name, Reason: "must be a number"})
			return nil
		}
		return &f
	}

	req := createAssessmentRequest{
		VitalsInput: mews.VitalsInput{
			SystolicBP:         intField(mews.FieldSystolicBP),
			DiastolicBP:        intField(mews.FieldDiastolicBP),
			HeartRate:          intField(mews.FieldHeartRate),
			RespiratoryRate:    intField(mews.FieldRespiratoryRate),
			Temperature:        floatField(mews.FieldTemperature),
			OxygenSaturation:   intField(mews.FieldOxygenSaturation),
			ConsciousnessLevel: intField(mews.FieldConsciousnessLevel),
			UrineOutput:        floatField(mews.FieldUrineOutput),
		},
		AssessedAt: r.PostForm.Get("assessed_at"),
		Notes:      r.PostForm.Get("notes"),
	}
	if len(problems) > 0 {
		// Igual que NewVitalsRecord: se informan todos los campos, no solo el primero.
		var verr *mews.ValidationError
		if _, err := mews.NewVitalsRecord(req.VitalsInput); errors.As(err, &verr) {
			reported := make(map[string]bool, len(problems))
			for _, p := range problems {
				reported[p.Field] = true
			}
			for _, p := range verr.Problems {
				if !reported[p.Field] {
					problems = append(problems, p)
				}
			}
		}
		return createAssessmentRequest{}, &mews.ValidationError{Problems: problems}
	}
	return req, nil
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var verr *mews.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Error:    "invalid vitals",
			Problems: verr.Problems,
		})
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()

	filter := ListFilter{Limit: DefaultListLimit}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxListLimit {
			filter.Limit = n
		}
	}

	// tier=HIGH,MEDIUM
	if v := strings.TrimSpace(q.Get("tier")); v != "" {
		for _, p := range strings.Split(v, ",") {
			if strings.TrimSpace(p) == "" {
				continue
			}
			t, ok := mews.ParseTier(p)
			if !ok {
				return ListFilter{}, fmt.Errorf("unknown tier %q", strings.TrimSpace(p))
			}
			filter.Tiers = append(filter.Tiers, t)
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := parseTimeParam(v, false)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339 or YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := parseTimeParam(v, true)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339 or YYYY-MM-DD")
		}
		filter.To = &t
	}

	return filter, nil
}

// parseTimeParam: con fecha sola, endOfDay incluye el día completo.
func parseTimeParam(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return d.Add(24*time.Hour - time.Nanosecond), nil
	}
	return d, nil
}

func toScoreResponse(risk mews.RiskAssessment) scoreResponse {
	return scoreResponse{
		Score:     risk.Score,
		Tier:      risk.Tier,
		Message:   risk.Message,
		RiskLevel: risk.Tier.Label(),
		Breakdown: risk.Breakdown,
	}
}

func toAssessmentResponse(a Assessment) assessmentResponse {
	v := a.Vitals
	return assessmentResponse{
		ID:         a.ID,
		PatientID:  a.PatientID,
		AssessedAt: a.AssessedAt,
		RecordedAt: a.RecordedAt,
		Source:     a.Source,
		RecordedBy: a.RecordedBy,
		Notes:      a.Notes,
		Vitals: vitalsPayload{
			SystolicBP:         v.SystolicBP,
			DiastolicBP:        v.DiastolicBP,
			HeartRate:          v.HeartRate,
			RespiratoryRate:    v.RespiratoryRate,
			Temperature:        v.Temperature,
			OxygenSaturation:   v.OxygenSaturation,
			ConsciousnessLevel: v.ConsciousnessLevel,
			UrineOutput:        v.UrineOutput,
		},
		scoreResponse: toScoreResponse(a.Risk),
	}
}

// writeJSON está duplicado en handlers de distintos módulos para no crear
// un paquete de helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
