package handler

import (
	"encoding/json"
	"net/http"

	"github.com/catalog14/catalog/internal/api/middleware"
	"github.com/catalog14/catalog/internal/api/response"
	"github.com/catalog14/catalog/internal/auth"
)

// userInfo is the wire shape of a resolved identity.
type userInfo struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  string  `json:"role"`
}

func toUserInfo(identity *auth.Identity) userInfo {
	return userInfo{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  identity.Name,
		Role:  identity.Role,
	}
}

// AuthHandler handles the identity endpoints.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Me handles GET /auth/me: echoes the identity the gate resolved for this
// request.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	response.JSON(w, http.StatusOK, toUserInfo(identity))
}

// validateTokenRequest is the request body for POST /auth/validate.
type validateTokenRequest struct {
	Token string `json:"token"`
}

// validateTokenResponse is the success body for POST /auth/validate.
type validateTokenResponse struct {
	Valid bool     `json:"valid"`
	User  userInfo `json:"user"`
}

// Validate handles POST /auth/validate: decodes and resolves a token
// supplied in the body, without requiring an Authorization header.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req validateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Request body must be valid JSON")
		return
	}
	if req.Token == "" {
		response.BadRequest(w, "Token is required")
		return
	}

	identity, err := h.svc.ResolveToken(req.Token)
	if err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	response.JSON(w, http.StatusOK, validateTokenResponse{
		Valid: true,
		User:  toUserInfo(identity),
	})
}
