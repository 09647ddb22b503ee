package postgres

import (
	"context"

	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rechargeCodeRepository implements the repository.RechargeCodeRepository interface using GORM.
type rechargeCodeRepository struct {
	db *gorm.DB
}

// NewRechargeCodeRepository is the constructor for rechargeCodeRepository.
func NewRechargeCodeRepository(db *gorm.DB) repository.RechargeCodeRepository {
	return &rechargeCodeRepository{
		db: db,
	}
}

// ListRechargeCodes returns a page of code rows, newest first, plus the
// exact total for the filter.
func (repo *rechargeCodeRepository) ListRechargeCodes(ctx context.Context, query repository.ListRechargeCodesQuery) ([]*entity.RechargeCode, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.RechargeCodeModel{})

	if query.BatchID != "" {
		tx = tx.Where("batch_id = ?", query.BatchID)
	}
	switch query.Status {
	case repository.RechargeStatusUsed:
		tx = tx.Where("is_used = ?", true)
	case repository.RechargeStatusUnused:
		tx = tx.Where("is_used = ?", false)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count recharge codes")
	}

	var codeModels []*model.RechargeCodeModel
	if err := tx.
		Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&codeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list recharge codes")
	}

	codes := make([]*entity.RechargeCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		codes = append(codes, toRechargeCodeDomain(codeM))
	}

	return codes, total, nil
}

// CreateBatch inserts all rows of an issuance batch in a single statement.
func (repo *rechargeCodeRepository) CreateBatch(ctx context.Context, codes []*entity.RechargeCode) error {
	if len(codes) == 0 {
		return nil
	}

	codeModels := make([]*model.RechargeCodeModel, 0, len(codes))
	for _, code := range codes {
		codeModels = append(codeModels, fromRechargeCodeDomain(code))
	}

	if err := repo.db.WithContext(ctx).Create(&codeModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Collision across 32^16 keyspace; the caller simply retries the batch.
			return domainerrors.NewDatabaseExecuteError(err, "duplicate code hash in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert recharge code batch")
	}

	for i, codeM := range codeModels {
		codes[i].ID = codeM.ID
		codes[i].CreatedAt = codeM.CreatedAt
	}

	return nil
}

// --- Mapper Functions ---

// toRechargeCodeDomain converts a GORM RechargeCodeModel to a domain RechargeCode entity.
func toRechargeCodeDomain(data *model.RechargeCodeModel) *entity.RechargeCode {
	if data == nil {
		return nil
	}

	return &entity.RechargeCode{
		ID:        data.ID,
		CodeHash:  data.CodeHash,
		Amount:    data.Amount,
		IsUsed:    data.IsUsed,
		UsedBy:    data.UsedBy,
		UsedAt:    data.UsedAt,
		BatchID:   data.BatchID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromRechargeCodeDomain converts a domain RechargeCode entity to a GORM RechargeCodeModel.
func fromRechargeCodeDomain(data *entity.RechargeCode) *model.RechargeCodeModel {
	if data == nil {
		return nil
	}

	return &model.RechargeCodeModel{
		ID:        data.ID,
		CodeHash:  data.CodeHash,
		Amount:    data.Amount,
		IsUsed:    data.IsUsed,
		UsedBy:    data.UsedBy,
		UsedAt:    data.UsedAt,
		BatchID:   data.BatchID,
		ExpiresAt: data.ExpiresAt,
	}
}
