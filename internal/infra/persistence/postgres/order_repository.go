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

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// ListOrdersWithCustomer returns a page of orders, newest first, with the
// minimal customer profile joined.
func (repo *orderRepository) ListOrdersWithCustomer(ctx context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
	return repo.list(ctx, query, true)
}

// ListOrders returns the same page without the profile join.
func (repo *orderRepository) ListOrders(ctx context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
	return repo.list(ctx, query, false)
}

func (repo *orderRepository) list(ctx context.Context, query repository.ListOrdersQuery, withCustomer bool) ([]*entity.Order, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	if withCustomer {
		tx = tx.Preload("Profile")
	}

	var orderModels []*model.OrderModel
	if err := tx.
		Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// UpdateOrder applies the given field updates and returns the joined record.
func (repo *orderRepository) UpdateOrder(ctx context.Context, id uuid.UUID, update repository.OrderUpdate) (*entity.Order, error) {
	updates := map[string]any{}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.AdminReply != nil {
		updates["admin_reply"] = *update.AdminReply
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrOrderStatusInvalid.WrapMessage("status constraint violated")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	var updated model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to reload updated order")
	}

	return toOrderDomain(&updated), nil
}

// DeleteOrder permanently removes an order.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		ProductName: data.ProductName,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Total:       data.Total,
		Status:      entity.OrderStatus(data.Status),
		AdminReply:  data.AdminReply,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Profile != nil {
		order.Customer = &entity.OrderCustomer{
			FullName: data.Profile.FullName,
			Phone:    data.Profile.Phone,
		}
	}

	return order
}
