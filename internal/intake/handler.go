package intake

import (
	"encoding/json"
	"net/http"

	"github.com/nitrondigital/wholesaling-api/pkg/logging"
)

// Handler handles HTTP requests for form submissions
type Handler struct {
	pipeline *Pipeline
	logger   *logging.Logger
}

// NewHandler creates a new intake handler
func NewHandler(pipeline *Pipeline, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// envelope is the uniform response shape for every intake endpoint.
type envelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubmitLead handles POST /api/leads requests
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, GeneralLeadForm)
}

// SubmitDealRequest handles POST /api/deal-requests requests
func (h *Handler) SubmitDealRequest(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, DealRequestForm)
}

// DescribeLeadForm handles GET /api/leads. It returns a static capability
// description of the lead form and has no side effects.
func (h *Handler) DescribeLeadForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Leads API - Use POST to submit a lead",
		"requiredFields": GeneralLeadForm.Required,
		"optionalFields": GeneralLeadForm.Optional,
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, form Form) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error("failed to decode submission", "form", form.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{OK: false, Error: "Internal server error"})
		return
	}

	res, err := h.pipeline.Submit(r.Context(), form, &payload)
	if err != nil {
		// Only validation reaches here; downstream failures never do.
		writeJSON(w, http.StatusBadRequest, envelope{OK: false, Error: "Missing required fields"})
		return
	}

	h.logger.Info("submission accepted",
		"form", form.Name,
		"id", res.Submission.ID,
		"persisted", res.Persisted,
		"relayed", res.Relayed,
	)
	writeJSON(w, http.StatusOK, envelope{OK: true, Message: form.SuccessMessage})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
