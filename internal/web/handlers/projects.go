package handlers

import (
	"net/http"

	"task-manager/internal/service"
)

// CreateProject handles POST /projects
func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input service.ProjectInput
	if !h.decodeJSON(w, r, &input) {
		return
	}

	project, err := h.projects.CreateProject(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.jsonMessage(w, http.StatusCreated, "Project created successfully", map[string]any{"project_id": project.ID})
}

// ListProjects handles GET /projects
func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListProjects(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, projects)
}

// GetProject handles GET /projects/{id}
func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "Project")
	if !ok {
		return
	}

	project, err := h.projects.GetProject(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, project)
}

// GetProjectByName handles GET /projects/name/{name}
func (h *Handlers) GetProjectByName(w http.ResponseWriter, r *http.Request) {
	name, ok := h.textParam(w, r, "name", "Project")
	if !ok {
		return
	}

	project, err := h.projects.GetProjectByName(r.Context(), name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, project)
}

// UpdateProject handles PUT /projects/{id}
func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "Project")
	if !ok {
		return
	}

	var patch service.ProjectPatch
	if !h.decodeJSON(w, r, &patch) {
		return
	}

	project, err := h.projects.UpdateProject(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.jsonMessage(w, http.StatusOK, "Project updated successfully", map[string]any{"project": project})
}

// DeleteProject handles DELETE /projects/{id}
func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "Project")
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonMessage(w, http.StatusOK, "Project deleted successfully", nil)
}
