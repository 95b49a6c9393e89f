package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating shareable QR codes.
type QRCodeService interface {
	// GenerateRecipeQR renders a PNG QR code pointing at the public page of
	// the given recipe.
	GenerateRecipeQR(recipeID uuid.UUID) ([]byte, error)
}
