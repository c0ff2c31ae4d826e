package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JuliusM5/lidija-sub000/internal/models"
)

type aboutRequest struct {
	Title    string                `json:"title" validate:"required,max=200"`
	Subtitle string                `json:"subtitle"`
	Image    string                `json:"image"`
	Intro    string                `json:"intro"`
	Sections []models.AboutSection `json:"sections"`
	Email    string                `json:"email" validate:"omitempty,email"`
	Social   models.SocialLinks    `json:"social"`
}

func (h *Handlers) GetAbout(w http.ResponseWriter, r *http.Request) {
	page, err := h.AboutRepo.Get(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, page, http.StatusOK)
}

// AdminUpdateAbout replaces the singleton about page.
func (h *Handlers) AdminUpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req aboutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := &models.AboutPage{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		Intro:    req.Intro,
		Sections: req.Sections,
		Email:    req.Email,
		Social:   req.Social,
	}
	if err := h.AboutRepo.Save(r.Context(), page); err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, page, http.StatusOK)
}
