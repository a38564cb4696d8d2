package handlers

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"task-manager/internal/repository"
)

// TestDBConnection handles GET /test_db_connection.
// The failure body includes the raw driver error.
func (h *Handlers) TestDBConnection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if err := repository.Ping(r.Context(), h.db); err != nil {
		log.Error().Err(err).Msg("Database connection check failed")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprintf(w, "Database connection error: %v", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Database connection successful!"))
}
