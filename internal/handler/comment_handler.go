package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JuliusM5/lidija-sub000/internal/models"
)

type createCommentRequest struct {
	RecipeID string `json:"recipe_id" validate:"required"`
	ParentID string `json:"parent_id"`
	Author   string `json:"author" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Content  string `json:"content" validate:"required,max=2000"`
}

// GetComments returns the approved comment threads of a recipe.
func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	recipeID := r.URL.Query().Get("recipe_id")
	if recipeID == "" {
		WriteError(w, "recipe_id is required", http.StatusBadRequest)
		return
	}

	threads, err := h.CommentRepo.ListThreads(r.Context(), recipeID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, threads, http.StatusOK)
}

// CreateComment accepts a visitor comment. The payload schema is strict;
// the comment always enters moderation as pending.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment := &models.Comment{
		RecipeID: req.RecipeID,
		ParentID: req.ParentID,
		Author:   req.Author,
		Email:    req.Email,
		Content:  req.Content,
	}

	created, err := h.CommentService.CreatePublic(r.Context(), comment)
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, created, http.StatusCreated)
}
