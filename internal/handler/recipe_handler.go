package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
)

// GetRecipes serves the public listing. Only published recipes ever leave
// this endpoint. `?id=` is an alternate single-recipe lookup kept for the
// legacy front end.
func (h *Handlers) GetRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if id := q.Get("id"); id != "" {
		recipe, err := h.RecipeRepo.GetPublished(r.Context(), id)
		if err != nil {
			WriteRepoError(w, err)
			return
		}
		WriteSuccess(w, recipe, http.StatusOK)
		return
	}

	filter := repository.RecipeFilter{
		Status:   models.RecipeStatusPublished,
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Latest:   q.Get("latest") == "true" || q.Get("latest") == "1",
		Popular:  q.Get("popular") == "true" || q.Get("popular") == "1",
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true" || v == "1"
		filter.Featured = &featured
	}

	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	recipes, meta, err := h.RecipeRepo.List(r.Context(), filter, repository.OffsetPagination{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccessMeta(w, recipes, meta, http.StatusOK)
}

// GetRecipe resolves a single published recipe by ID or slug and counts the
// view. Unknown IDs are a plain 404 envelope; there is no fallback chain.
func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	idOrSlug := mux.Vars(r)["id"]

	recipe, err := h.RecipeRepo.GetPublished(r.Context(), idOrSlug)
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, recipe, http.StatusOK)
}
