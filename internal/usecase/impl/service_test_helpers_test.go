package impl

import (
	"io"
	"log/slog"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:                 uuid.New(),
		FirstName:          "Test",
		LastName:           "User",
		Username:           "testuser",
		Email:              "test@example.com",
		DietaryPreferences: []string{"vegetarian"},
		Role:               entity.RoleUser,
		PasswordHash:       "hashed_password",
	}
}

func newTestRecipe(authorID uuid.UUID) *entity.Recipe {
	return &entity.Recipe{
		ID:           uuid.New(),
		Title:        "Tomato Soup",
		Description:  "A simple soup",
		Category:     "soup",
		Ingredients:  []string{"tomatoes", "salt"},
		Instructions: []string{"chop", "simmer"},
		PrepTime:     10,
		CookTime:     25,
		AuthorID:     authorID,
	}
}

func ownerIdentity(user *entity.User) entity.Identity {
	return entity.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func adminIdentity() entity.Identity {
	return entity.Identity{
		UserID:   uuid.New(),
		Username: "admin",
		Role:     entity.RoleAdmin,
	}
}

func strangerIdentity() entity.Identity {
	return entity.Identity{
		UserID:   uuid.New(),
		Username: "stranger",
		Role:     entity.RoleUser,
	}
}
