package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// errorStatus maps the core error kinds onto HTTP status codes. Invalid
// lifecycle transitions are business-rule violations, not bad input, so they
// surface as forbidden.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusForbidden
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func sendServiceError(w http.ResponseWriter, err error) {
	sendError(w, err.Error(), errorStatus(err))
}
