package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalog14/catalog/internal/api/handler"
	"github.com/catalog14/catalog/internal/api/middleware"
	"github.com/catalog14/catalog/internal/auth"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestAuthMe(t *testing.T) {
	h := handler.NewAuthHandler(auth.NewService(auth.NewDecoder()))

	name := "Ada"
	identity := &auth.Identity{ID: "user-1", Email: "ada@example.com", Name: &name, Role: auth.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identity))

	rec := httptest.NewRecorder()
	h.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ID    string  `json:"id"`
		Email string  `json:"email"`
		Name  *string `json:"name"`
		Role  string  `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Ada", *got.Name)
	assert.Equal(t, auth.RoleAdmin, got.Role)
}

func TestAuthMe_Unauthenticated(t *testing.T) {
	h := handler.NewAuthHandler(auth.NewService(auth.NewDecoder()))

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not authenticated", errMessage(t, rec))
}

func TestAuthValidate(t *testing.T) {
	h := handler.NewAuthHandler(auth.NewService(auth.NewDecoder()))

	token := signToken(t, jwt.MapClaims{
		"sub":   "user-7",
		"email": "bob@example.com",
		"role":  auth.RoleViewer,
	})

	body, _ := json.Marshal(map[string]string{"token": token})
	req := httptest.NewRequest(http.MethodPost, "/auth/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Validate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Valid bool `json:"valid"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Valid)
	assert.Equal(t, "user-7", got.User.ID)
	assert.Equal(t, auth.RoleViewer, got.User.Role)
}

func TestAuthValidate_MissingToken(t *testing.T) {
	h := handler.NewAuthHandler(auth.NewService(auth.NewDecoder()))

	req := httptest.NewRequest(http.MethodPost, "/auth/validate", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	h.Validate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Token is required", errMessage(t, rec))
}

func TestAuthValidate_InvalidToken(t *testing.T) {
	h := handler.NewAuthHandler(auth.NewService(auth.NewDecoder()))

	body, _ := json.Marshal(map[string]string{"token": "not-a-jwt"})
	req := httptest.NewRequest(http.MethodPost, "/auth/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Validate(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", errMessage(t, rec))
}

func TestAuthValidate_InvalidJSON(t *testing.T) {
	h := handler.NewAuthHandler(auth.NewService(auth.NewDecoder()))

	req := httptest.NewRequest(http.MethodPost, "/auth/validate", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	h.Validate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
