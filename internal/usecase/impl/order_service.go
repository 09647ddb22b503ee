package impl

import (
	"context"
	"log/slog"

	"raseed/internal/domain/constants"
	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/domain/service"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultOrderLimit = 50
	maxOrderLimit     = 100
)

type orderService struct {
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListOrders retrieves a page of orders with the customer profile joined.
// When the joined read fails at the storage layer, the listing degrades to a
// flat read so the back-office stays available.
func (s *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, int64, error) {
	limit, offset := clampPage(input.Page, input.Limit, defaultOrderLimit, maxOrderLimit)

	query := repository.ListOrdersQuery{
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	}

	orders, total, err := s.orderRepo.ListOrdersWithCustomer(ctx, query)
	if err == nil {
		return orders, total, nil
	}

	s.logger.Warn("Joined order listing failed, retrying without customer profile",
		slog.String("error", err.Error()),
	)

	orders, total, err = s.orderRepo.ListOrders(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return orders, total, nil
}

// UpdateOrder validates and applies status/admin reply changes
func (s *orderService) UpdateOrder(ctx context.Context, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if input.ID == uuid.Nil {
		return nil, domainerrors.ErrOrderIDRequired
	}

	var update repository.OrderUpdate
	if input.Status != nil {
		if !entity.ValidOrderStatus(*input.Status) {
			return nil, domainerrors.ErrOrderStatusInvalid
		}
		status := entity.OrderStatus(*input.Status)
		update.Status = &status
	}
	update.AdminReply = input.AdminReply

	if update.Status == nil && update.AdminReply == nil {
		return nil, domainerrors.ErrOrderNothingToUpdate
	}

	order, err := s.orderRepo.UpdateOrder(ctx, input.ID, update)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	s.publishEvent(ctx, constants.EventOrderUpdated, order.ID.String(), map[string]string{
		"status": string(order.Status),
	})

	return order, nil
}

// DeleteOrder permanently removes an order
func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerrors.ErrOrderIDRequired
	}

	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	return nil
}

// publishEvent publishes an admin action event. Publish failures are logged,
// never surfaced: the mutation already committed.
func (s *orderService) publishEvent(ctx context.Context, eventType, entityID string, payload map[string]string) {
	event := &service.AdminEvent{
		RequestID: requestIDFromContext(ctx),
		Type:      eventType,
		EntityID:  entityID,
		Payload:   payload,
	}

	if err := s.publisher.PublishAdminEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish admin event",
			slog.String("type", eventType),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()),
		)
	}
}
