// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName          string     `gorm:"type:varchar(100)"`
	LastName           string     `gorm:"type:varchar(100)"`
	Username           string     `gorm:"type:varchar(100);unique;not null"`
	Email              string     `gorm:"type:varchar(255);unique;not null"`
	DietaryPreferences StringList `gorm:"type:jsonb;default:'[]'"`
	Role               string     `gorm:"type:varchar(20);not null;default:'user'"`
	PasswordHash       string     `gorm:"type:varchar(255);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Recipes []RecipeModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
