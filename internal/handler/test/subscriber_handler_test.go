package test

import (
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

func TestSubscribe(t *testing.T) {
	repo := new(MockSubscriberRepository)
	h := newHandlers()
	h.SubscriberRepo = repo

	sub := &models.Subscriber{ID: "s1", Email: "ona@example.com", Status: "active"}
	repo.On("Create", mock.Anything, "ona@example.com").Return(sub, nil)

	body := `{"email":"ona@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	repo := new(MockSubscriberRepository)
	h := newHandlers()
	h.SubscriberRepo = repo

	body := `{"email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	repo := new(MockSubscriberRepository)
	h := newHandlers()
	h.SubscriberRepo = repo

	repo.On("Create", mock.Anything, "ona@example.com").Return(nil, repository.ErrDuplicate)

	body := `{"email":"ona@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}
