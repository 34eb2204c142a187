package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmchat/nmbot/config"
	"github.com/nmchat/nmbot/pkg/auth"
	"github.com/nmchat/nmbot/pkg/models"
)

func TestAuthMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	newAppState := func(required bool) *models.AppState {
		cfg := config.Defaults()
		cfg.Auth = config.AuthConfig{
			Secret:   "test-secret",
			Required: required,
		}
		return &models.AppState{Bot: newTestBot(t), Config: &cfg}
	}

	t.Run("auth required", func(t *testing.T) {
		router, err := setupRouter(newAppState(true))
		require.NoError(t, err)
		router.Handle("/", testHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("auth required with token", func(t *testing.T) {
		appState := newAppState(true)
		router, err := setupRouter(appState)
		require.NoError(t, err)
		router.Handle("/", testHandler)

		token, err := auth.GenerateJWT(appState.Config)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res := httptest.NewRecorder()

		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("healthz is open when auth is required", func(t *testing.T) {
		router, err := setupRouter(newAppState(true))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		res := httptest.NewRecorder()

		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("auth not required", func(t *testing.T) {
		router, err := setupRouter(newAppState(false))
		require.NoError(t, err)
		router.Handle("/", testHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("auth required without secret", func(t *testing.T) {
		appState := newAppState(true)
		appState.Config.Auth.Secret = ""
		_, err := setupRouter(appState)
		require.ErrorIs(t, err, auth.ErrMissingSecret)
	})
}

func TestSendVersion(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := SendVersion(nextHandler)

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get(versionHeader) != config.VersionString {
		t.Errorf("handler returned wrong version header: got %v want %v",
			rr.Header().Get(versionHeader), config.VersionString)
	}
}

func TestCreate(t *testing.T) {
	cfg := config.Defaults()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080

	srv, err := Create(&models.AppState{Bot: newTestBot(t), Config: &cfg})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8080", srv.Addr)
	require.Equal(t, ReadHeaderTimeout, srv.ReadHeaderTimeout)
}
