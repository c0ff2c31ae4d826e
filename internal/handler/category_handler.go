package handlers

import (
	"net/http"
	"strconv"

	"github.com/JuliusM5/lidija-sub000/internal/repository"
)

// GetCategories lists the categories derived from published recipes.
// `?name=` narrows to a single category.
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if name := q.Get("name"); name != "" {
		category, err := h.CategoryRepo.Get(r.Context(), name)
		if err != nil {
			WriteRepoError(w, err)
			return
		}
		WriteSuccess(w, category, http.StatusOK)
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	categories, meta, err := h.CategoryRepo.List(r.Context(), repository.PagePagination{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccessMeta(w, categories, meta, http.StatusOK)
}

func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.CategoryRepo.Tags(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, tags, http.StatusOK)
}
