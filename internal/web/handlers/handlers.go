package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"task-manager/internal/service"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Handlers contains all HTTP handlers
type Handlers struct {
	db       *gorm.DB
	users    *service.UserService
	tasks    *service.TaskService
	projects *service.ProjectService
}

// New creates a new Handlers instance
func New(db *gorm.DB, users *service.UserService, tasks *service.TaskService, projects *service.ProjectService) *Handlers {
	return &Handlers{
		db:       db,
		users:    users,
		tasks:    tasks,
		projects: projects,
	}
}

// Routes registers the CRUD endpoints on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.ListUsers)
		r.Get("/{id:[0-9]+}", h.GetUser)
		r.Get("/username/{username}", h.GetUserByUsername)
		r.Put("/{id:[0-9]+}", h.UpdateUser)
		r.Delete("/{id:[0-9]+}", h.DeleteUser)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Get("/{id:[0-9]+}", h.GetTask)
		r.Get("/title/{title}", h.GetTaskByTitle)
		r.Put("/{id:[0-9]+}", h.UpdateTask)
		r.Delete("/{id:[0-9]+}", h.DeleteTask)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", h.CreateProject)
		r.Get("/", h.ListProjects)
		r.Get("/{id:[0-9]+}", h.GetProject)
		r.Get("/name/{name}", h.GetProjectByName)
		r.Put("/{id:[0-9]+}", h.UpdateProject)
		r.Delete("/{id:[0-9]+}", h.DeleteProject)
		r.Get("/{id:[0-9]+}/tasks", h.ListProjectTasks)
		r.Patch("/{id:[0-9]+}/tasks/{taskID:[0-9]+}/toggle-completion", h.ToggleTaskCompletion)
	})
}

// jsonResponse writes v as JSON with the given status
func (h *Handlers) jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// jsonError sends a JSON error response
func (h *Handlers) jsonError(w http.ResponseWriter, message string, status int) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

func (h *Handlers) jsonMessage(w http.ResponseWriter, status int, message string, extra map[string]any) {
	body := map[string]any{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	h.jsonResponse(w, status, body)
}

// handleError answers validation and lookup failures with their message.
// Anything else is logged and reported as a bare 500.
func (h *Handlers) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch {
		case errors.Is(err, service.ErrValidation):
			h.jsonError(w, svcErr.Message, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrNotFound):
			h.jsonError(w, svcErr.Message, http.StatusNotFound)
			return
		}
	}

	event := log.Error()
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		event = log.Warn()
	}
	event.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("Request failed")

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// decodeJSON reads the request body into v. Malformed or oversized bodies get a plain 400.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("Invalid request body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	return true
}

// idParam parses a numeric URL parameter. The router only matches digits,
// so the only failure left is overflow, which cannot name an existing row.
func (h *Handlers) idParam(w http.ResponseWriter, r *http.Request, name, entity string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 0)
	if err != nil {
		h.jsonError(w, entity+" not found", http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// textParam returns a decoded string URL parameter. chi matches against
// RawPath when the client escaped characters Go would leave alone, so the
// value still carries its escapes in that case.
func (h *Handlers) textParam(w http.ResponseWriter, r *http.Request, name, entity string) (string, bool) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, true
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		h.jsonError(w, entity+" not found", http.StatusNotFound)
		return "", false
	}
	return decoded, true
}
