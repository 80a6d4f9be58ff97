// internal/adapters/httpapi/handlers.go
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	perrors "phishscan/internal/platform/errors"
	"phishscan/internal/platform/validator"
)

// FormField is the form field holding the submitted URL.
const FormField = "name"

type errorBody struct {
	Error string `json:"error"`
}

type healthBody struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// handlePredict classifies the URL in the "name" form field. The response
// is the bare verdict, or the full report when ?explain=true.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	raw := r.PostFormValue(FormField)

	if err := validator.ValidateSubmission(raw); err != nil {
		s.fail(w, r, err)
		return
	}

	start := time.Now()
	report, err := s.classifier.Classify(r.Context(), raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.observeResult(report.Classification, time.Since(start))

	if explain, _ := strconv.ParseBool(r.URL.Query().Get("explain")); explain {
		writeJSON(w, http.StatusOK, report)
		return
	}
	writeJSON(w, http.StatusOK, report.ScoreResult)
}

// fail maps err onto its status code and user message.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	kind := perrors.KindOf(err)
	status := perrors.HTTPStatus(kind)
	s.metrics.observeError(kind)

	if status >= http.StatusInternalServerError {
		s.logger.Err(err, "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()))
	} else {
		s.logger.Debug("submission rejected", "kind", kind.String(), "request_id", RequestIDFrom(r.Context()))
	}

	writeJSON(w, status, errorBody{Error: perrors.UserMessage(err)})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{
		Status:    "UP",
		Service:   ServiceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReadyz reports DOWN once shutdown has started.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	body := healthBody{
		Status:    "UP",
		Service:   ServiceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if !s.ready.Load() {
		body.Status = "DOWN"
		writeJSON(w, http.StatusServiceUnavailable, body)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
