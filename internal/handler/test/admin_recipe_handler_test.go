package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
	"github.com/JuliusM5/lidija-sub000/internal/service"
)

func TestAdminCreateRecipeJSON(t *testing.T) {
	svc := new(MockRecipeService)
	h := newHandlers()
	h.RecipeService = svc

	created := &models.Recipe{ID: "r1", Title: "Kugelis", Slug: "kugelis", Status: models.RecipeStatusDraft}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Recipe) bool {
		return r.Title == "Kugelis" && len(r.Ingredients) == 2
	}), (*service.UploadedImage)(nil)).Return(created, nil)

	body := `{"title":"Kugelis","ingredients":["bulvės","lašiniai"],"steps":["Tarkuoti","Kepti"]}`
	req := httptest.NewRequest(http.MethodPost, "/admin-api/recipes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.AdminCreateRecipe(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	svc.AssertExpectations(t)
}

func TestAdminCreateRecipeRejectsLegacyShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"scalar category", `{"title":"Kugelis","categories":"Pietūs"}`},
		{"json-string ingredients", `{"title":"Kugelis","ingredients":"[\"bulvės\"]"}`},
		{"missing title", `{"ingredients":["bulvės"]}`},
		{"bad status", `{"title":"Kugelis","status":"archived"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockRecipeService)
			h := newHandlers()
			h.RecipeService = svc

			req := httptest.NewRequest(http.MethodPost, "/admin-api/recipes", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.AdminCreateRecipe(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAdminCreateRecipeMultipartWithImage(t *testing.T) {
	svc := new(MockRecipeService)
	h := newHandlers()
	h.RecipeService = svc

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Šaltibarščiai"))
	require.NoError(t, mw.WriteField("status", "published"))
	require.NoError(t, mw.WriteField("ingredients", "burokėliai"))
	require.NoError(t, mw.WriteField("ingredients", "kefyras"))
	require.NoError(t, mw.WriteField("featured", "true"))
	fw, err := mw.CreateFormFile("image", "saltibarsciai.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	created := &models.Recipe{ID: "r2", Title: "Šaltibarščiai", Status: models.RecipeStatusPublished}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Recipe) bool {
		return r.Title == "Šaltibarščiai" && r.Featured && len(r.Ingredients) == 2
	}), mock.MatchedBy(func(img *service.UploadedImage) bool {
		return img != nil && img.Filename == "saltibarsciai.jpg"
	})).Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin-api/recipes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.AdminCreateRecipe(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestAdminUpdateRecipeCarriesPathID(t *testing.T) {
	svc := new(MockRecipeService)
	h := newHandlers()
	h.RecipeService = svc

	updated := &models.Recipe{ID: "r1", Title: "Kugelis v2"}
	svc.On("Update", mock.Anything, mock.MatchedBy(func(rc *models.Recipe) bool {
		return rc.ID == "r1" && rc.Title == "Kugelis v2"
	}), (*service.UploadedImage)(nil)).Return(updated, nil)

	r := mux.NewRouter()
	r.HandleFunc("/admin-api/recipes/{id}", h.AdminUpdateRecipe).Methods(http.MethodPut)

	body := `{"title":"Kugelis v2"}`
	req := httptest.NewRequest(http.MethodPut, "/admin-api/recipes/r1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestAdminDeleteRecipe(t *testing.T) {
	svc := new(MockRecipeService)
	h := newHandlers()
	h.RecipeService = svc

	svc.On("Delete", mock.Anything, "r1").Return(nil)

	r := mux.NewRouter()
	r.HandleFunc("/admin-api/recipes/{id}", h.AdminDeleteRecipe).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/admin-api/recipes/r1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var got map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "r1", got["deleted"])
}

func TestAdminDeleteRecipeNotFound(t *testing.T) {
	svc := new(MockRecipeService)
	h := newHandlers()
	h.RecipeService = svc

	svc.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)

	r := mux.NewRouter()
	r.HandleFunc("/admin-api/recipes/{id}", h.AdminDeleteRecipe).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/admin-api/recipes/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminListRecipesPassesFilters(t *testing.T) {
	repo := new(MockRecipeRepository)
	h := newHandlers()
	h.RecipeRepo = repo

	meta := repository.PageMeta{Total: 1, Page: 2, PerPage: 5, Pages: 1}
	repo.On("ListPaged", mock.Anything, repository.RecipeFilter{Status: "draft", Search: "pyragas"},
		repository.PagePagination{Page: 2, PerPage: 5}).
		Return([]models.Recipe{{ID: "r1"}}, meta, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin-api/recipes?status=draft&search=pyragas&page=2&per_page=5", nil)
	rec := httptest.NewRecorder()
	h.AdminListRecipes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var gotMeta repository.PageMeta
	require.NoError(t, json.Unmarshal(env.Meta, &gotMeta))
	assert.Equal(t, meta, gotMeta)

	repo.AssertExpectations(t)
}
