package handler

import (
	"net/http"

	"github.com/mcoot/wordtiles-go/internal/api/response"
)

// LoadChecker reports whether the dictionary is ready
type LoadChecker interface {
	IsLoaded() bool
}

// Health returns the handler for GET /api/v1/health
func Health(dict LoadChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status:     "ok",
			Dictionary: dict.IsLoaded(),
		})
	}
}
