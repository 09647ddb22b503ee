package impl

import (
	"context"
	"strings"

	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/domain/service"
	"raseed/internal/usecase"

	"github.com/pkg/errors"
)

type adminService struct {
	adminRepo repository.AdminRepository
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
}

// NewAdminService creates a new admin authentication service instance
func NewAdminService(
	adminRepo repository.AdminRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
) usecase.AdminUsecase {
	return &adminService{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
	}
}

// Login verifies credentials and issues a token pair. Unknown emails and
// wrong passwords return the same error so the response never reveals which
// part failed.
func (s *adminService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin account")
	}

	if !s.hasher.Check(password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}
