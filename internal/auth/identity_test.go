package auth_test

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalog14/catalog/internal/auth"
)

func TestResolveIdentity_AllClaimsPresent(t *testing.T) {
	claims := jwtv5.MapClaims{
		"sub":   "u1",
		"email": "a@b.com",
		"name":  "Alice",
		"role":  "Admin",
		"iat":   float64(1700000000),
	}

	identity, err := auth.ResolveIdentity(claims)
	require.NoError(t, err)

	assert.Equal(t, "u1", identity.ID)
	assert.Equal(t, "a@b.com", identity.Email)
	require.NotNil(t, identity.Name)
	assert.Equal(t, "Alice", *identity.Name)
	assert.Equal(t, "Admin", identity.Role)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), identity.IssuedAt)
}

func TestResolveIdentity_SubjectAliases(t *testing.T) {
	const nameIDClaim = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"

	t.Run("sub wins over alias", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{
			"sub":       "primary",
			nameIDClaim: "secondary",
		})
		require.NoError(t, err)
		assert.Equal(t, "primary", identity.ID)
	})

	t.Run("nameid alias", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{"nameid": "u2"})
		require.NoError(t, err)
		assert.Equal(t, "u2", identity.ID)
	})

	t.Run("URI alias", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{nameIDClaim: "u3"})
		require.NoError(t, err)
		assert.Equal(t, "u3", identity.ID)
	})
}

func TestResolveIdentity_MissingSubject(t *testing.T) {
	cases := map[string]jwtv5.MapClaims{
		"no claims":       {},
		"empty sub":       {"sub": ""},
		"non-string sub":  {"sub": 42},
		"unrelated claim": {"email": "a@b.com", "role": "Admin"},
	}

	for name, claims := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := auth.ResolveIdentity(claims)
			assert.ErrorIs(t, err, auth.ErrResolutionFailed)
		})
	}
}

func TestResolveIdentity_EmailAndNameDefaults(t *testing.T) {
	identity, err := auth.ResolveIdentity(jwtv5.MapClaims{"sub": "u1"})
	require.NoError(t, err)

	assert.Equal(t, "", identity.Email)
	assert.Nil(t, identity.Name)
	assert.False(t, identity.IssuedAt.IsZero())
}

func TestResolveIdentity_RoleFallbacks(t *testing.T) {
	t.Run("role claim wins", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{
			"sub":       "u1",
			"role":      "Editor",
			"user_role": "Admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "Editor", identity.Role)
	})

	t.Run("user_role fallback", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{
			"sub":       "u1",
			"user_role": "Editor",
		})
		require.NoError(t, err)
		assert.Equal(t, "Editor", identity.Role)
	})

	t.Run("user_metadata object", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{
			"sub":           "u1",
			"user_metadata": map[string]any{"role": "Editor"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Editor", identity.Role)
	})

	t.Run("user_metadata JSON string", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{
			"sub":           "u1",
			"user_metadata": `{"role":"Editor"}`,
		})
		require.NoError(t, err)
		assert.Equal(t, "Editor", identity.Role)
	})

	t.Run("malformed user_metadata falls back to Viewer", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{
			"sub":           "u1",
			"user_metadata": `{not json`,
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleViewer, identity.Role)
	})

	t.Run("no role claims at all defaults to Viewer", func(t *testing.T) {
		identity, err := auth.ResolveIdentity(jwtv5.MapClaims{"sub": "u2"})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleViewer, identity.Role)
	})
}

func TestService_ResolveToken(t *testing.T) {
	svc := auth.NewService(auth.NewDecoder())

	t.Run("valid token", func(t *testing.T) {
		token := makeToken(t, map[string]any{"sub": "u1", "email": "a@b.com", "role": "Admin"})

		identity, err := svc.ResolveToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", identity.ID)
		assert.Equal(t, "a@b.com", identity.Email)
		assert.Equal(t, "Admin", identity.Role)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ResolveToken("garbage")
		assert.ErrorIs(t, err, auth.ErrMalformedToken)
	})

	t.Run("decodable token without subject", func(t *testing.T) {
		token := makeToken(t, map[string]any{"email": "a@b.com"})

		_, err := svc.ResolveToken(token)
		assert.ErrorIs(t, err, auth.ErrResolutionFailed)
	})
}
