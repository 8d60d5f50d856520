package auth

// Authorize reports whether the identity may act as the required role.
// A nil identity is never authorized. RoleAdmin passes every check;
// any other role must match exactly, case-sensitively. There is no
// hierarchy beyond the Admin bypass.
func Authorize(identity *Identity, requiredRole string) bool {
	if identity == nil {
		return false
	}
	if identity.Role == RoleAdmin {
		return true
	}
	return identity.Role == requiredRole
}
