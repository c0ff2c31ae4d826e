package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe registers a newsletter email.
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub, err := h.SubscriberRepo.Create(r.Context(), req.Email)
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, sub, http.StatusCreated)
}

func (h *Handlers) AdminListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.SubscriberRepo.List(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, subscribers, http.StatusOK)
}

func (h *Handlers) AdminDeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.SubscriberRepo.Delete(r.Context(), id); err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, map[string]string{"deleted": id}, http.StatusOK)
}
