package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/zep-ner/config"
	"github.com/getzep/zep-ner/internal"
)

func init() {
	log = internal.GetLogger()
}

func TestNewAppState(t *testing.T) {
	nlpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer nlpServer.Close()

	cfg := &config.Config{NLP: config.NLP{
		Backend:   config.BackendServer,
		ServerURL: nlpServer.URL,
		Timeout:   time.Second,
	}}

	appState, err := NewAppState(context.Background(), cfg)
	require.NoError(t, err)
	assert.Same(t, cfg, appState.Config)
	assert.NotNil(t, appState.Recognizer)
}

func TestNewAppStateModelUnavailable(t *testing.T) {
	nlpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer nlpServer.Close()

	cfg := &config.Config{NLP: config.NLP{
		Backend:   config.BackendServer,
		ServerURL: nlpServer.URL,
		Timeout:   time.Second,
	}}

	appState, err := NewAppState(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, appState)
}

func TestWriteConfig(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8000},
		NLP:    config.NLP{Backend: config.BackendProse},
	}

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, cfg))

	var got config.Config
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *cfg, got)
}

func TestJSONSchemaCommand(t *testing.T) {
	var buf bytes.Buffer
	dumpJSONSchemaCmd.SetOut(&buf)
	defer dumpJSONSchemaCmd.SetOut(nil)

	require.NoError(t, dumpJSONSchemaCmd.RunE(dumpJSONSchemaCmd, nil))
	assert.True(t, json.Valid(buf.Bytes()))
}
