// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a single shared recipe. AuthorID references the User that
// created it and is immutable after creation; only the author or an admin may
// mutate or delete the record.
type Recipe struct {
	ID           uuid.UUID // The unique identifier for the recipe, generated by the database.
	Title        string    // The recipe title. Required.
	Description  string    // A free-form description of the dish.
	Category     string    // A coarse category label, e.g. "dessert".
	Ingredients  []string  // Ordered ingredient lines. Required.
	Instructions []string  // Ordered preparation steps. Required.
	PrepTime     int       // Preparation time in minutes.
	CookTime     int       // Cooking time in minutes.
	ImageURL     string    // Optional URL of a picture of the finished dish.
	AuthorID     uuid.UUID // The User that created this recipe. Immutable.
	CreatedAt    time.Time // Timestamp of when this recipe was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
