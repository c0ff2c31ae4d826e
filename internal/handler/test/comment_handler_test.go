package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
)

func TestGetCommentsRequiresRecipeID(t *testing.T) {
	h := newHandlers()
	h.CommentRepo = new(MockCommentRepository)

	req := httptest.NewRequest(http.MethodGet, "/api/comments", nil)
	rec := httptest.NewRecorder()
	h.GetComments(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "recipe_id is required", env.Error)
}

func TestGetCommentsReturnsThreads(t *testing.T) {
	repo := new(MockCommentRepository)
	h := newHandlers()
	h.CommentRepo = repo

	threads := []models.CommentThread{
		{
			Comment: models.Comment{ID: "c1", RecipeID: "r1", Author: "Ona", Status: models.CommentStatusApproved},
			Replies: []models.Comment{
				{ID: "c2", RecipeID: "r1", ParentID: "c1", Author: "Lidija", Status: models.CommentStatusApproved},
			},
		},
	}
	repo.On("ListThreads", mock.Anything, "r1").Return(threads, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/comments?recipe_id=r1", nil)
	rec := httptest.NewRecorder()
	h.GetComments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var got []models.CommentThread
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Len(t, got[0].Replies, 1)
}

func TestCreateCommentValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing recipe_id", `{"author":"Ona","email":"ona@example.com","content":"Labai skanu"}`},
		{"missing author", `{"recipe_id":"r1","email":"ona@example.com","content":"Labai skanu"}`},
		{"bad email", `{"recipe_id":"r1","author":"Ona","email":"not-an-email","content":"Labai skanu"}`},
		{"missing content", `{"recipe_id":"r1","author":"Ona","email":"ona@example.com"}`},
		{"content too long", `{"recipe_id":"r1","author":"Ona","email":"ona@example.com","content":"` + strings.Repeat("a", 2001) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCommentService)
			h := newHandlers()
			h.CommentService = svc

			req := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.CreateComment(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "CreatePublic", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCommentEntersModeration(t *testing.T) {
	svc := new(MockCommentService)
	h := newHandlers()
	h.CommentService = svc

	created := &models.Comment{
		ID:       "c1",
		RecipeID: "r1",
		Author:   "Ona",
		Email:    "ona@example.com",
		Content:  "Labai skanu",
		Status:   models.CommentStatusPending,
	}
	svc.On("CreatePublic", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.RecipeID == "r1" && c.Author == "Ona" && c.ParentID == ""
	})).Return(created, nil)

	body := `{"recipe_id":"r1","author":"Ona","email":"ona@example.com","content":"Labai skanu"}`
	req := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateComment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var got models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, models.CommentStatusPending, got.Status)

	svc.AssertExpectations(t)
}

func TestCreateCommentUnknownRecipe(t *testing.T) {
	svc := new(MockCommentService)
	h := newHandlers()
	h.CommentService = svc

	svc.On("CreatePublic", mock.Anything, mock.Anything).Return(nil, repository.ErrInvalid)

	body := `{"recipe_id":"missing","author":"Ona","email":"ona@example.com","content":"Labai skanu"}`
	req := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateComment(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}
