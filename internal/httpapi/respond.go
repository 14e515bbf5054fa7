package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskflowhq/taskflow/internal/domain"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// errorResponse is the uniform error body: {status, message}, with the raw
// cause attached only in development.
type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

// writeError maps a domain error kind to its HTTP status. Unclassified
// failures are logged and rendered as a generic 500 without internal detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	resp := errorResponse{Status: status}
	if kind == domain.KindInternal {
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		resp.Message = "internal server error"
		if s.dev {
			resp.Detail = err.Error()
		}
	} else {
		var de *domain.Error
		if errors.As(err, &de) {
			resp.Message = de.Message
		} else {
			resp.Message = err.Error()
		}
	}

	s.writeJSON(w, status, resp)
}

func (s *Server) writeErrorMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Status: status, Message: message})
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// readJSON decodes a JSON request body with a size limit.
func readJSON[T any](s *Server, w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if err.Error() == "http: request body too large" {
			s.writeErrorMessage(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			s.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		}
		return v, false
	}
	return v, true
}
