package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/catalog14/catalog/internal/api/response"
	"github.com/catalog14/catalog/internal/auth"
)

const identityKey contextKey = "identity"

const bearerPrefix = "Bearer "

// TokenResolver resolves a raw bearer token into an Identity.
type TokenResolver interface {
	ResolveToken(token string) (*auth.Identity, error)
}

// Auth is the authorization gate. Every request outside the exempt
// allow-list must carry a decodable bearer token; the resolved Identity is
// placed in the request context for downstream handlers. Exempt paths pass
// through without any token inspection. Rejections are always structured
// JSON, never a panic or a 500.
func Auth(resolver TokenResolver, exemptPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pathExempt(r.URL.Path, exemptPaths) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				response.Unauthorized(w, "Missing or invalid authorization token")
				return
			}

			token, ok := bearerToken(header)
			if !ok {
				response.Unauthorized(w, "Missing or invalid authorization token")
				return
			}
			if token == "" {
				response.Unauthorized(w, "Invalid token format")
				return
			}

			identity, err := resolver.ResolveToken(token)
			if err != nil {
				slog.Warn("rejected token", "path", r.URL.Path, "requestId", GetRequestID(r.Context()), "error", err)
				if errors.Is(err, auth.ErrMalformedToken) {
					response.Unauthorized(w, "Invalid token format")
					return
				}
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// WithIdentity returns a context carrying the resolved Identity.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity retrieves the authenticated Identity from the request
// context, or nil when the request was not authenticated.
func GetIdentity(ctx context.Context) *auth.Identity {
	if id, ok := ctx.Value(identityKey).(*auth.Identity); ok {
		return id
	}
	return nil
}

// bearerToken strips the case-insensitive "Bearer " prefix and trims
// surrounding whitespace. ok is false when the prefix is absent.
func bearerToken(header string) (token string, ok bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), true
}

// pathExempt reports whether the path is on the allow-list. "/" matches
// only exactly; every other entry matches itself and its subpaths.
func pathExempt(path string, exempt []string) bool {
	for _, p := range exempt {
		if p == "" {
			continue
		}
		if p == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
