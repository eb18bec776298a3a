package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"engagement_service/internal/adapter/http/handlers"
	"engagement_service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		StoreType:       config.StoreMemory,
		QuoteTTL:        time.Hour,
		DispatchBuffer:  16,
		DispatchWorkers: 1,
	}
	a, err := buildApp(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(a.close)
	return NewRouter(a.handlers)
}

func call(t *testing.T, r *gin.Engine, method, path, profileID, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if profileID != "" {
		req.Header.Set(handlers.HeaderProfileID, profileID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestRouter_PingAndIdentity(t *testing.T) {
	r := newTestServer(t)

	code, body := call(t, r, http.MethodGet, "/v1/ping", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body["message"])

	code, body = call(t, r, http.MethodPost, "/v1/requests", "", `{"category":"plumbing","title":"Fix sink"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
}

func TestRouter_EngagementFlow(t *testing.T) {
	r := newTestServer(t)

	code, created := call(t, r, http.MethodPost, "/v1/requests", "req-1", `{"category":"plumbing","title":"Fix sink"}`)
	require.Equal(t, http.StatusCreated, code)
	requestID := created["id"].(string)
	require.NotEmpty(t, requestID)

	code, status := call(t, r, http.MethodPut, "/v1/requests/"+requestID+"/provider-status", "prov-1", `{"status":"viewed"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "viewed", status["status"])

	code, sub := call(t, r, http.MethodPost, "/v1/requests/"+requestID+"/quotes", "prov-1", `{"price":"120","message":"today"}`)
	require.Equal(t, http.StatusCreated, code)
	quoteID := sub["quote"].(map[string]any)["id"].(string)

	code, again := call(t, r, http.MethodPost, "/v1/requests/"+requestID+"/quotes", "prov-1", `{"price":"90"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, quoteID, again["quote"].(map[string]any)["id"])
	assert.Equal(t, "120.00", again["quote"].(map[string]any)["price"])

	code, first := call(t, r, http.MethodPost, "/v1/quotes/"+quoteID+"/agreement", "req-1", `{"accepted":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, first["finalized"])

	code, _ = call(t, r, http.MethodPost, "/v1/requests/"+requestID+"/complete", "prov-1", "")
	assert.Equal(t, http.StatusForbidden, code)

	code, second := call(t, r, http.MethodPost, "/v1/quotes/"+quoteID+"/agreement", "prov-1", `{"accepted":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, second["finalized"])

	code, req := call(t, r, http.MethodGet, "/v1/requests/"+requestID, "req-1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "assigned", req["status"])
	assert.Equal(t, "prov-1", req["assigned_provider_id"])

	code, status = call(t, r, http.MethodGet, "/v1/requests/"+requestID+"/provider-status", "prov-1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "assigned", status["status"])

	code, wf := call(t, r, http.MethodPost, "/v1/requests/"+requestID+"/workflow/milestones", "prov-1", `{"milestone":"in_progress"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, wf["assigned"])
	assert.Equal(t, true, wf["in_progress"])

	code, wf = call(t, r, http.MethodGet, "/v1/requests/"+requestID+"/workflow?provider_id=prov-1", "req-1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, wf["in_progress"])

	code, done := call(t, r, http.MethodPost, "/v1/requests/"+requestID+"/complete", "prov-1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "completed", done["status"])

	code, body := call(t, r, http.MethodPost, "/v1/requests/"+requestID+"/quotes", "prov-2", `{"price":"80"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_STATE", body["code"])
}
