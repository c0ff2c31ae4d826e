package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JuliusM5/lidija-sub000/internal/repository"
)

type commentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved spam"`
}

// AdminListComments lists comments of any status for moderation.
func (h *Handlers) AdminListComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.CommentFilter{
		RecipeID: q.Get("recipe_id"),
		Status:   q.Get("status"),
	}
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	comments, meta, err := h.CommentRepo.ListPaged(r.Context(), filter, repository.PagePagination{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccessMeta(w, comments, meta, http.StatusOK)
}

// AdminSetCommentStatus moves a comment between pending, approved and spam.
func (h *Handlers) AdminSetCommentStatus(w http.ResponseWriter, r *http.Request) {
	var req commentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.CommentService.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, updated, http.StatusOK)
}

// AdminDeleteComment removes a comment together with its replies.
func (h *Handlers) AdminDeleteComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.CommentService.Delete(r.Context(), id); err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, map[string]string{"deleted": id}, http.StatusOK)
}
