package handlers

import (
	"net/http"

	"task-manager/internal/service"
)

// CreateTask handles POST /tasks
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var input service.TaskInput
	if !h.decodeJSON(w, r, &input) {
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.jsonMessage(w, http.StatusCreated, "Task created successfully", map[string]any{"task_id": task.ID})
}

// ListTasks handles GET /tasks
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListTasks(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{id}
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "Task")
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, task)
}

// GetTaskByTitle handles GET /tasks/title/{title}
func (h *Handlers) GetTaskByTitle(w http.ResponseWriter, r *http.Request) {
	title, ok := h.textParam(w, r, "title", "Task")
	if !ok {
		return
	}

	task, err := h.tasks.GetTaskByTitle(r.Context(), title)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, task)
}

// ListProjectTasks handles GET /projects/{id}/tasks
func (h *Handlers) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.idParam(w, r, "id", "Project")
	if !ok {
		return
	}

	tasks, err := h.tasks.ListProjectTasks(r.Context(), projectID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, tasks)
}

// UpdateTask handles PUT /tasks/{id}
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "Task")
	if !ok {
		return
	}

	var patch service.TaskPatch
	if !h.decodeJSON(w, r, &patch) {
		return
	}

	task, err := h.tasks.UpdateTask(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.jsonMessage(w, http.StatusOK, "Task updated successfully", map[string]any{"task": task})
}

// DeleteTask handles DELETE /tasks/{id}
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "Task")
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonMessage(w, http.StatusOK, "Task deleted successfully", nil)
}

// ToggleTaskCompletion handles PATCH /projects/{id}/tasks/{taskID}/toggle-completion
func (h *Handlers) ToggleTaskCompletion(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.idParam(w, r, "id", "Task")
	if !ok {
		return
	}
	taskID, ok := h.idParam(w, r, "taskID", "Task")
	if !ok {
		return
	}

	task, err := h.tasks.ToggleCompletion(r.Context(), projectID, taskID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.jsonMessage(w, http.StatusOK, "Task completion toggled successfully", map[string]any{"task": task})
}
