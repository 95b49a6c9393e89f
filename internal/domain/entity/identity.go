// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Identity is the per-request identity context attached after successful
// token verification. Downstream authorization logic only ever sees this
// struct, never the raw token.
type Identity struct {
	UserID   uuid.UUID // The authenticated user's ID, from the token's subject claims.
	Username string    // The authenticated user's login name.
	Role     Role      // The authenticated user's role.
}

// CanModify is the ownership policy shared by the user directory and the
// recipe catalog: a caller may mutate a resource when they own it or when
// they hold the admin role.
func (i Identity) CanModify(ownerID uuid.UUID) bool {
	return i.UserID == ownerID || i.Role == RoleAdmin
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
