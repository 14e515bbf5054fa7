package httpapi

import (
	"net/http"

	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/service"
)

type generateSuggestionsRequest struct {
	ProjectID       string            `json:"projectId"`
	Query           string            `json:"query"`
	AssociatedNodes []domain.TaskNode `json:"associatedNodes"`
}

func (s *Server) handleGenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		s.writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized: User not authenticated")
		return
	}

	req, ok := readJSON[generateSuggestionsRequest](s, w, r)
	if !ok {
		return
	}
	if req.ProjectID == "" || req.Query == "" {
		s.writeErrorMessage(w, http.StatusBadRequest, "projectId and query are required")
		return
	}

	result, err := s.suggestions.Generate(r.Context(), service.SuggestionRequest{
		ProjectID:       req.ProjectID,
		UserID:          id.UID,
		Query:           req.Query,
		AssociatedNodes: req.AssociatedNodes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}
