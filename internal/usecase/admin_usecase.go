package usecase

import (
	"context"

	"raseed/internal/domain/entity"
)

// LoginResult carries the issued token pair and the signed-in admin.
type LoginResult struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Admin        *entity.Admin `json:"admin"`
}

// AdminUsecase defines the interface for back-office operator authentication
type AdminUsecase interface {
	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
