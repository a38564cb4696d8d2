package handlers

import (
	"net/http"

	"task-manager/internal/service"
)

// CreateUser handles POST /users
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input service.UserInput
	if !h.decodeJSON(w, r, &input) {
		return
	}

	user, err := h.users.CreateUser(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.jsonMessage(w, http.StatusCreated, "User created successfully", map[string]any{"user_id": user.ID})
}

// ListUsers handles GET /users
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "User")
	if !ok {
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, user)
}

// GetUserByUsername handles GET /users/username/{username}
func (h *Handlers) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username, ok := h.textParam(w, r, "username", "User")
	if !ok {
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{id}
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "User")
	if !ok {
		return
	}

	var patch service.UserPatch
	if !h.decodeJSON(w, r, &patch) {
		return
	}

	user, err := h.users.UpdateUser(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.jsonMessage(w, http.StatusOK, "User updated successfully", map[string]any{"user": user})
}

// DeleteUser handles DELETE /users/{id}
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id", "User")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.jsonMessage(w, http.StatusOK, "User deleted successfully", nil)
}
