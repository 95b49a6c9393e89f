// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a registered account.
// PasswordHash stays on the entity for the persistence and login paths but is
// never serialized into an API response; handlers only ever expose the public
// projection produced by the usecase layer.
type User struct {
	ID                 uuid.UUID // The unique identifier for the user, generated by the database.
	FirstName          string    // The user's given name.
	LastName           string    // The user's family name.
	Username           string    // The unique login name, used as the credential identifier.
	Email              string    // The unique contact email.
	DietaryPreferences []string  // Ordered list of dietary preference labels, e.g. "vegan", "gluten-free".
	Role               Role      // The user's role, either "user" or "admin".
	PasswordHash       string    // The bcrypt-hashed password. Never returned to clients.
	CreatedAt          time.Time // Timestamp of when this account was created.
	UpdatedAt          time.Time // Timestamp of the last modification to this account.
}
