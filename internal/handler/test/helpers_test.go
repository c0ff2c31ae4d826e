package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/JuliusM5/lidija-sub000/internal/config"
	handlers "github.com/JuliusM5/lidija-sub000/internal/handler"
)

// envelope mirrors handlers.Response with raw payloads so each test can
// decode data into the type it expects.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
	Error   string          `json:"error"`
}

func newHandlers() *handlers.Handlers {
	return &handlers.Handlers{
		Cfg: &config.Config{
			MaxUploadSize: 10 << 20,
			JWTSecretKey:  "test-secret",
		},
		Validate: validator.New(),
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
