package controllers

import (
	"log/slog"
	"net/http"

	"ipe/internal/delivery/http/helpers"
	"ipe/internal/delivery/http/middleware"
)

// writeServiceError answers with the status mapped from err. Errors outside
// the domain contract are logged and answered with a generic 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, code, message, known := helpers.ClassifyError(err)
	if !known {
		logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"err", err,
		)
	}
	helpers.WriteJSONError(w, status, code, message)
}

// requireUserID returns the authenticated user ID or writes 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	}
	return userID, ok
}
