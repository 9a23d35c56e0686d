package config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClient_ListSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-123/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"secretFile": {"name": "gcp-credentials.json", "content": "{\"type\":\"service_account\"}"}, "cursor": "c1"},
			{"secretFile": {"name": "other", "content": "x"}, "cursor": "c2"}
		]`))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "api-key", BaseURL: server.URL, HTTPClient: server.Client()}

	secrets, err := client.ListSecrets("srv-123")
	require.NoError(t, err)
	assert.Len(t, secrets, 2)
	assert.Equal(t, `{"type":"service_account"}`, secrets[gcpCredentialsSecret])
}

func TestRenderClient_ListSecretsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "bad", BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.ListSecrets("srv-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
