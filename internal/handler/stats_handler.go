package handlers

import (
	"net/http"
)

type statsResponse struct {
	RecipesPublished int `json:"recipes_published"`
	RecipesDraft     int `json:"recipes_draft"`
	CommentsPending  int `json:"comments_pending"`
	MediaFiles       int `json:"media_files"`
	Subscribers      int `json:"subscribers"`
}

// AdminStats backs the dashboard counters.
func (h *Handlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	published, drafts, err := h.RecipeRepo.Count(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	pending, err := h.CommentRepo.CountPending(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	media, err := h.MediaRepo.Count(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	subscribers, err := h.SubscriberRepo.Count(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, statsResponse{
		RecipesPublished: published,
		RecipesDraft:     drafts,
		CommentsPending:  pending,
		MediaFiles:       media,
		Subscribers:      subscribers,
	}, http.StatusOK)
}
