package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_CanModify(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name     string
		identity Identity
		ownerID  uuid.UUID
		want     bool
	}{
		{"owner can modify", Identity{UserID: ownerID, Role: RoleUser}, ownerID, true},
		{"admin can modify foreign resource", Identity{UserID: otherID, Role: RoleAdmin}, ownerID, true},
		{"non-owner non-admin cannot modify", Identity{UserID: otherID, Role: RoleUser}, ownerID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.CanModify(tt.ownerID))
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("merchant").IsValid())
	assert.False(t, Role("").IsValid())
}
