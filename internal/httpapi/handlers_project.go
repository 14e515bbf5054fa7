package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskflowhq/taskflow/internal/domain"
)

type createProjectRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		s.writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized: User not authenticated")
		return
	}

	req, ok := readJSON[createProjectRequest](s, w, r)
	if !ok {
		return
	}

	project, err := s.projects.Create(r.Context(), req.Name, id.UID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, project)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		s.writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized: User not authenticated")
		return
	}

	projects, err := s.projects.List(r.Context(), id.UID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	s.writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		s.writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized: User not authenticated")
		return
	}

	project, err := s.projects.GetByID(r.Context(), chi.URLParam(r, "id"), id.UID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleEditProject(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		s.writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized: User not authenticated")
		return
	}

	diff, ok := readJSON[domain.ProjectDiff](s, w, r)
	if !ok {
		return
	}

	project, err := s.projects.Edit(r.Context(), chi.URLParam(r, "id"), id.UID, diff)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		s.writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized: User not authenticated")
		return
	}

	if err := s.projects.Delete(r.Context(), chi.URLParam(r, "id"), id.UID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
