package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalog14/catalog/api"
	"github.com/catalog14/catalog/internal/api/handler"
)

func TestOpenAPI_ServesEmbeddedSpecAsJSON(t *testing.T) {
	h := handler.NewOpenAPIHandler(api.OpenAPISpec)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc, "openapi")
	assert.Contains(t, doc, "paths")
}

func TestOpenAPI_InvalidYAML(t *testing.T) {
	h := handler.NewOpenAPIHandler([]byte("\t: not yaml"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
