package middleware

import (
	"net/http"

	"github.com/catalog14/catalog/internal/api/response"
	"github.com/catalog14/catalog/internal/auth"
)

// RequireRole returns middleware enforcing the role policy for one
// required role. Admin identities pass every check; others must match the
// role exactly. An unauthenticated request gets a 401, an authenticated
// one with an insufficient role a 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := GetIdentity(r.Context())
			if identity == nil {
				response.Unauthorized(w, "Missing or invalid authorization token")
				return
			}

			if !auth.Authorize(identity, role) {
				response.Forbidden(w, "Requires role "+role)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
