package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Distinguished roles. RoleAdmin bypasses every role check; RoleViewer is
// the default for tokens that carry no recognized role claim.
const (
	RoleAdmin  = "Admin"
	RoleViewer = "Viewer"
)

// ErrResolutionFailed is returned when a decodable token carries no usable
// subject claim.
var ErrResolutionFailed = errors.New("token missing required identity claim")

// Identity is the normalized view of a token's claims. It is derived fresh
// for every request and never persisted.
type Identity struct {
	ID       string
	Email    string
	Name     *string
	Role     string
	IssuedAt time.Time
}

// Claim aliases, checked in order; first present wins. The URI forms are
// what WS-Fed-style issuers emit for the same attributes.
var (
	idClaims = []string{
		"sub",
		"nameid",
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier",
	}
	emailClaims = []string{
		"email",
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress",
	}
	nameClaims = []string{
		"name",
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name",
	}
)

// ResolveIdentity builds an Identity from a claim set. It fails only when
// every subject alias is absent or empty; every other field falls back to
// a default.
func ResolveIdentity(claims jwt.MapClaims) (*Identity, error) {
	id, _ := stringClaim(claims, idClaims...)
	if id == "" {
		return nil, ErrResolutionFailed
	}

	identity := &Identity{
		ID:       id,
		Role:     resolveRole(claims),
		IssuedAt: time.Now().UTC(),
	}

	if email, ok := stringClaim(claims, emailClaims...); ok {
		identity.Email = email
	}
	if name, ok := stringClaim(claims, nameClaims...); ok {
		identity.Name = &name
	}
	if iat, ok := claims["iat"].(float64); ok {
		identity.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}

	return identity, nil
}

// resolveRole extracts the role: the role claim, then user_role, then a
// role key inside user_metadata, then the Viewer default. Malformed
// user_metadata is swallowed, not a failure.
func resolveRole(claims jwt.MapClaims) string {
	if role, ok := stringClaim(claims, "role"); ok {
		return role
	}
	if role, ok := stringClaim(claims, "user_role"); ok {
		return role
	}

	switch meta := claims["user_metadata"].(type) {
	case map[string]any:
		if role, ok := meta["role"].(string); ok && role != "" {
			return role
		}
	case string:
		var parsed map[string]any
		if err := json.Unmarshal([]byte(meta), &parsed); err == nil {
			if role, ok := parsed["role"].(string); ok && role != "" {
				return role
			}
		}
	}

	return RoleViewer
}

// stringClaim returns the first non-empty string value among the named
// claims. Non-string claim values are skipped.
func stringClaim(claims jwt.MapClaims, names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := claims[name].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
