package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table. AuthorID references users.id and is
// never included in updates; ownership is fixed at creation time.
type RecipeModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	Category     string     `gorm:"type:varchar(100)"`
	Ingredients  StringList `gorm:"type:jsonb;not null;default:'[]'"`
	Instructions StringList `gorm:"type:jsonb;not null;default:'[]'"`
	PrepTime     int
	CookTime     int
	ImageURL     string    `gorm:"type:text"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
