package postgres

import (
	"context"

	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// ListProfiles returns a page of shopper profiles, newest first, plus the
// exact total for the filter.
func (repo *profileRepository) ListProfiles(ctx context.Context, query repository.ListProfilesQuery) ([]*entity.Profile, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProfileModel{})

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("full_name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count profiles")
	}

	var profileModels []*model.ProfileModel
	if err := tx.
		Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&profileModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, total, nil
}

// SetBlocked sets is_blocked to the given explicit value and returns the
// updated profile.
func (repo *profileRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*entity.Profile, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("is_blocked", blocked)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to toggle profile block")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	var updated model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to reload profile")
	}

	return toProfileDomain(&updated), nil
}

// CountProfiles returns the total number of shopper profiles.
func (repo *profileRepository) CountProfiles(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count profiles")
	}

	return count, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:            data.ID,
		FullName:      data.FullName,
		Phone:         data.Phone,
		AvatarURL:     data.AvatarURL,
		WalletBalance: data.WalletBalance,
		IsBlocked:     data.IsBlocked,
		CreatedAt:     data.CreatedAt,
	}
}
