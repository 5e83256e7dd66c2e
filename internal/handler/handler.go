// Package handler contains chi HTTP handlers that drive the registration
// workflow and render its result as an HTML page or as JSON.
package handler

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Shivanand-hulikatti/community-events/internal/confirm"
	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/Shivanand-hulikatti/community-events/internal/service"
	"github.com/Shivanand-hulikatti/community-events/internal/store"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// EventHandler holds all HTTP handlers for the portal.
type EventHandler struct {
	wf     *service.Workflow
	tmpl   *template.Template
	logger *slog.Logger
}

// NewEventHandler constructs an EventHandler and parses the page template.
func NewEventHandler(wf *service.Workflow, logger *slog.Logger) (*EventHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &EventHandler{wf: wf, tmpl: tmpl, logger: logger}, nil
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

// apiResponse is the JSON body of every /api response.
type apiResponse struct {
	*page
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func criteriaFrom(r *http.Request) model.Criteria {
	return model.Criteria{
		Category: r.FormValue("category"),
		Search:   r.FormValue("search"),
	}
}

// eventID parses the {id} URL parameter. Anything unparsable becomes 0,
// which never resolves to an event.
func eventID(r *http.Request) int {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	return id
}

// statusFor maps workflow errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStaleSelection):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNoSeats):
		return http.StatusConflict
	case errors.Is(err, confirm.ErrRejected):
		return http.StatusBadGateway
	case errors.Is(err, confirm.ErrTransport):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *EventHandler) newPage(r *http.Request) *page {
	return &page{
		Criteria:   criteriaFrom(r),
		Categories: h.wf.Categories(),
	}
}

// renderHTML fills in any section the workflow did not project and writes
// the full page.
func (h *EventHandler) renderHTML(w http.ResponseWriter, p *page) {
	if p.Events == nil {
		h.wf.ApplyFilters(p, p.Criteria)
	}
	if p.Choices == nil {
		h.wf.RefreshChoices(p)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", p); err != nil {
		h.logger.Error("render page", "error", err)
	}
}

// ─── Page handlers ────────────────────────────────────────────────────────────

// Index handles GET /
// Initialises the page and shows the one-time load notice.
func (h *EventHandler) Index(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r)
	h.wf.Init(p, p.Criteria)
	h.renderHTML(w, p)
}

// Filter handles GET /events
// Recomputes the visible list after a category change or a confirmed search.
func (h *EventHandler) Filter(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r)
	h.wf.ApplyFilters(p, p.Criteria)
	h.renderHTML(w, p)
}

// Register handles POST /events/{id}/register
// Direct registration from an event card.
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r)
	_, _ = h.wf.Register(p, p.Criteria, eventID(r))
	h.renderHTML(w, p)
}

// Submit handles POST /register
// Registration form submission, including the remote confirmation.
func (h *EventHandler) Submit(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r)
	id, _ := strconv.Atoi(r.FormValue("event"))
	p.Form = model.RegistrationForm{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		EventID: id,
	}
	reg, err := h.wf.SubmitRegistration(r.Context(), p, p.Criteria, p.Form)
	if err != nil {
		h.logger.Debug("form registration failed", "error", err)
	}
	p.Registration = reg
	h.renderHTML(w, p)
}

// ─── JSON API ─────────────────────────────────────────────────────────────────

// ListEvents handles GET /api/events
// Returns the visible events for ?category= and ?search=.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r)
	h.wf.ApplyFilters(p, p.Criteria)
	writeJSON(w, http.StatusOK, apiResponse{page: p})
}

// ListSelectable handles GET /api/events/selectable
// Returns the registration form's choices.
func (h *EventHandler) ListSelectable(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r)
	h.wf.RefreshChoices(p)
	writeJSON(w, http.StatusOK, apiResponse{page: p})
}

// RegisterAPI handles POST /api/events/{id}/register
func (h *EventHandler) RegisterAPI(w http.ResponseWriter, r *http.Request) {
	p := h.newPage(r)
	if _, err := h.wf.Register(p, p.Criteria, eventID(r)); err != nil {
		writeJSON(w, statusFor(err), apiResponse{page: p, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{page: p})
}

// SubmitAPI handles POST /api/registrations
func (h *EventHandler) SubmitAPI(w http.ResponseWriter, r *http.Request) {
	var form model.RegistrationForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	p := h.newPage(r)
	reg, err := h.wf.SubmitRegistration(r.Context(), p, p.Criteria, form)
	if err != nil {
		writeJSON(w, statusFor(err), apiResponse{page: p, Error: err.Error()})
		return
	}
	p.Registration = reg
	writeJSON(w, http.StatusCreated, apiResponse{page: p})
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
