package postgres

import (
	"context"

	"raseed/internal/domain/entity"
	"raseed/internal/domain/repository"
	"raseed/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindAdminByEmail retrieves a single admin account by email address.
func (repo *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return &entity.Admin{
		ID:           adminM.ID,
		Email:        adminM.Email,
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}, nil
}
