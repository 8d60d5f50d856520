package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalog14/catalog/internal/api/middleware"
	"github.com/catalog14/catalog/internal/auth"
)

type stubResolver struct {
	identity *auth.Identity
	err      error
	calls    int
	lastTok  string
}

func (s *stubResolver) ResolveToken(token string) (*auth.Identity, error) {
	s.calls++
	s.lastTok = token
	return s.identity, s.err
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (errLabel, message string) {
	t.Helper()
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error, body.Message
}

func authedRequest(path, header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestAuth_ExemptPathSkipsResolution(t *testing.T) {
	resolver := &stubResolver{}
	handler := middleware.Auth(resolver, []string{"/health"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, middleware.GetIdentity(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/health", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, resolver.calls)
}

func TestAuth_ExemptSubpath(t *testing.T) {
	resolver := &stubResolver{}
	handler := middleware.Auth(resolver, []string{"/auth/validate"})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/auth/validate/extra", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RootExemptIsExactOnly(t *testing.T) {
	resolver := &stubResolver{}
	handler := middleware.Auth(resolver, []string{"/"})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := middleware.Auth(&stubResolver{}, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errLabel, message := decodeError(t, rec)
	assert.Equal(t, "Unauthorized", errLabel)
	assert.Equal(t, "Missing or invalid authorization token", message)
}

func TestAuth_NonBearerScheme(t *testing.T) {
	resolver := &stubResolver{}
	handler := middleware.Auth(resolver, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", "Basic dXNlcjpwYXNz"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, message := decodeError(t, rec)
	assert.Equal(t, "Missing or invalid authorization token", message)
	assert.Zero(t, resolver.calls)
}

func TestAuth_EmptyBearerToken(t *testing.T) {
	resolver := &stubResolver{}
	handler := middleware.Auth(resolver, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", "Bearer   "))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, message := decodeError(t, rec)
	assert.Equal(t, "Invalid token format", message)
	assert.Zero(t, resolver.calls)
}

func TestAuth_MalformedToken(t *testing.T) {
	resolver := &stubResolver{err: auth.ErrMalformedToken}
	handler := middleware.Auth(resolver, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", "Bearer not-a-jwt"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, message := decodeError(t, rec)
	assert.Equal(t, "Invalid token format", message)
}

func TestAuth_ResolutionFailure(t *testing.T) {
	resolver := &stubResolver{err: auth.ErrResolutionFailed}
	handler := middleware.Auth(resolver, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", "Bearer a.b.c"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, message := decodeError(t, rec)
	assert.Equal(t, "Invalid or expired token", message)
}

func TestAuth_Success(t *testing.T) {
	want := &auth.Identity{ID: "user-1", Email: "u@example.com", Role: auth.RoleViewer}
	resolver := &stubResolver{identity: want}

	var got *auth.Identity
	handler := middleware.Auth(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", "Bearer a.b.c"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, want, got)
	assert.Equal(t, "a.b.c", resolver.lastTok)
}

func TestAuth_BearerPrefixCaseInsensitive(t *testing.T) {
	resolver := &stubResolver{identity: &auth.Identity{ID: "user-1", Role: auth.RoleViewer}}
	handler := middleware.Auth(resolver, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/products", "bearer a.b.c"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a.b.c", resolver.lastTok)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
