package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JuliusM5/lidija-sub000/internal/repository"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
	Error   string `json:"error,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Success: false, Error: message})
}

func WriteSuccess(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Success: true, Data: data})
}

// WriteSuccessMeta is WriteSuccess with a pagination meta block.
func WriteSuccessMeta(w http.ResponseWriter, data any, meta any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Success: true, Data: data, Meta: meta})
}

// WriteRepoError maps repository sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic message; details stay in the logs.
func WriteRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrInvalid):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrDuplicate):
		WriteError(w, err.Error(), http.StatusConflict)
	default:
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
