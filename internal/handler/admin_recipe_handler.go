package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
	"github.com/JuliusM5/lidija-sub000/internal/service"
)

// recipeRequest is the one canonical recipe payload. List fields are JSON
// arrays (or repeated form fields for multipart); scalar and JSON-string
// submissions from the old clients are rejected with a 400.
type recipeRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Intro       string   `json:"intro"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	PrepTime    string   `json:"prep_time"`
	CookTime    string   `json:"cook_time"`
	Servings    string   `json:"servings"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Notes       string   `json:"notes"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published"`
	Featured    bool     `json:"featured"`
}

func (req *recipeRequest) toModel() *models.Recipe {
	return &models.Recipe{
		Title:       req.Title,
		Intro:       req.Intro,
		Categories:  req.Categories,
		Tags:        req.Tags,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Notes:       req.Notes,
		Status:      req.Status,
		Featured:    req.Featured,
	}
}

// parseRecipeRequest reads either a JSON body or a multipart form (the form
// may carry an image file under "image").
func (h *Handlers) parseRecipeRequest(r *http.Request) (*recipeRequest, *service.UploadedImage, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var req recipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, nil, err
		}
		return &req, nil, nil
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize + 1<<20); err != nil {
		return nil, nil, err
	}

	req := recipeRequest{
		Title:       r.FormValue("title"),
		Intro:       r.FormValue("intro"),
		Categories:  r.MultipartForm.Value["categories"],
		Tags:        r.MultipartForm.Value["tags"],
		PrepTime:    r.FormValue("prep_time"),
		CookTime:    r.FormValue("cook_time"),
		Servings:    r.FormValue("servings"),
		Ingredients: r.MultipartForm.Value["ingredients"],
		Steps:       r.MultipartForm.Value["steps"],
		Notes:       r.FormValue("notes"),
		Status:      r.FormValue("status"),
		Featured:    r.FormValue("featured") == "true" || r.FormValue("featured") == "1",
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		// No file part is fine; the recipe keeps its current image.
		return &req, nil, nil
	}
	return &req, &service.UploadedImage{Filename: header.Filename, Reader: file}, nil
}

// AdminListRecipes lists all recipes regardless of status, page+per_page
// convention, with optional status and search filters.
func (h *Handlers) AdminListRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.RecipeFilter{
		Status: q.Get("status"),
		Search: q.Get("search"),
	}
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	recipes, meta, err := h.RecipeRepo.ListPaged(r.Context(), filter, repository.PagePagination{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccessMeta(w, recipes, meta, http.StatusOK)
}

// AdminGetRecipe fetches any recipe by ID without the view side effect.
func (h *Handlers) AdminGetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.RecipeRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, recipe, http.StatusOK)
}

func (h *Handlers) AdminCreateRecipe(w http.ResponseWriter, r *http.Request) {
	req, image, err := h.parseRecipeRequest(r)
	if err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.RecipeService.Create(r.Context(), req.toModel(), image)
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, created, http.StatusCreated)
}

func (h *Handlers) AdminUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	req, image, err := h.parseRecipeRequest(r)
	if err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	recipe := req.toModel()
	recipe.ID = mux.Vars(r)["id"]

	updated, err := h.RecipeService.Update(r.Context(), recipe, image)
	if err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, updated, http.StatusOK)
}

func (h *Handlers) AdminDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.RecipeService.Delete(r.Context(), id); err != nil {
		WriteRepoError(w, err)
		return
	}
	WriteSuccess(w, map[string]string{"deleted": id}, http.StatusOK)
}
