package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/zep-ner/config"
	"github.com/getzep/zep-ner/pkg/models"
	"github.com/getzep/zep-ner/pkg/testutils"
)

func TestCreate(t *testing.T) {
	appState := &models.AppState{
		Recognizer: testutils.NewStubRecognizer(),
		Config: &config.Config{
			Server: config.ServerConfig{Host: "127.0.0.1", Port: 8123},
		},
	}

	srv := Create(appState)
	assert.Equal(t, "127.0.0.1:8123", srv.Addr)
	assert.Equal(t, DefaultReadHeaderTimeout, srv.ReadHeaderTimeout)

	appState.Config.Server.ReadHeaderTimeout = time.Second
	srv = Create(appState)
	assert.Equal(t, time.Second, srv.ReadHeaderTimeout)
}

func TestRouterOnlyAcceptsPost(t *testing.T) {
	router := setupRouter(&models.AppState{
		Recognizer: testutils.NewStubRecognizer(),
		Config:     &config.Config{},
	})

	req := httptest.NewRequest(http.MethodGet, "/ner-service", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusMethodNotAllowed, res.Code)

	req = httptest.NewRequest(http.MethodPost, "/entities", strings.NewReader(`{"data":[]}`))
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestRouterRecoversPanics(t *testing.T) {
	router := setupRouter(&models.AppState{
		Recognizer: panicRecognizer{},
		Config:     &config.Config{},
	})

	req := httptest.NewRequest(
		http.MethodPost,
		"/ner-service",
		strings.NewReader(`{"data":[{"post_url":"a","content":"boom"}]}`),
	)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusInternalServerError, res.Code)
	assert.NotContains(t, res.Body.String(), "post_url")
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
