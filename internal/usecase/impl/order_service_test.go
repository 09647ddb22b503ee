package impl

import (
	"context"
	"log/slog"
	"testing"

	"raseed/internal/domain/constants"
	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/domain/service"
	mockRepo "raseed/internal/mocks/repository"
	mockSvc "raseed/internal/mocks/service"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOrderService_ListOrders_Joined(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()
	expected := []*entity.Order{
		{
			ID:     uuid.New(),
			Status: entity.OrderStatusPending,
			Customer: &entity.OrderCustomer{
				FullName: "أحمد علي",
				Phone:    "07701234567",
			},
		},
	}

	orderRepo.EXPECT().
		ListOrdersWithCustomer(ctx, repository.ListOrdersQuery{Limit: 50, Offset: 0}).
		Return(expected, int64(1), nil)

	orders, total, err := service.ListOrders(ctx, &usecase.ListOrdersInput{})
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
	assert.Equal(t, int64(1), total)
}

func TestOrderService_ListOrders_FallsBackWithoutCustomer(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()
	query := repository.ListOrdersQuery{Status: "pending", Limit: 50, Offset: 0}
	flat := []*entity.Order{{ID: uuid.New(), Status: entity.OrderStatusPending}}

	orderRepo.EXPECT().
		ListOrdersWithCustomer(ctx, query).
		Return(nil, int64(0), errors.New("join failed"))

	orderRepo.EXPECT().
		ListOrders(ctx, query).
		Return(flat, int64(1), nil)

	orders, total, err := service.ListOrders(ctx, &usecase.ListOrdersInput{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, flat, orders)
	assert.Equal(t, int64(1), total)
	assert.Nil(t, orders[0].Customer)
}

func TestOrderService_ListOrders_BothReadsFail(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()
	query := repository.ListOrdersQuery{Limit: 50, Offset: 0}

	orderRepo.EXPECT().
		ListOrdersWithCustomer(ctx, query).
		Return(nil, int64(0), errors.New("join failed"))

	orderRepo.EXPECT().
		ListOrders(ctx, query).
		Return(nil, int64(0), errors.New("db gone"))

	orders, _, err := service.ListOrders(ctx, &usecase.ListOrdersInput{})
	require.Error(t, err)
	assert.Nil(t, orders)
}

func TestOrderService_UpdateOrder_Validation(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()
	badStatus := "shipped"

	_, err := service.UpdateOrder(ctx, &usecase.UpdateOrderInput{})
	require.ErrorIs(t, err, domainerrors.ErrOrderIDRequired)

	_, err = service.UpdateOrder(ctx, &usecase.UpdateOrderInput{ID: uuid.New(), Status: &badStatus})
	require.ErrorIs(t, err, domainerrors.ErrOrderStatusInvalid)

	_, err = service.UpdateOrder(ctx, &usecase.UpdateOrderInput{ID: uuid.New()})
	require.ErrorIs(t, err, domainerrors.ErrOrderNothingToUpdate)
}

func TestOrderService_UpdateOrder_PublishesEvent(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	orderSvc := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()
	id := uuid.New()
	status := "completed"
	updated := &entity.Order{ID: id, Status: entity.OrderStatusCompleted}

	orderRepo.EXPECT().
		UpdateOrder(ctx, id, mock.AnythingOfType("repository.OrderUpdate")).
		Run(func(_ context.Context, _ uuid.UUID, update repository.OrderUpdate) {
			require.NotNil(t, update.Status)
			assert.Equal(t, entity.OrderStatusCompleted, *update.Status)
			assert.Nil(t, update.AdminReply)
		}).
		Return(updated, nil)

	publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Run(func(_ context.Context, event *service.AdminEvent) {
			assert.Equal(t, constants.EventOrderUpdated, event.Type)
			assert.Equal(t, id.String(), event.EntityID)
			assert.Equal(t, "completed", event.Payload["status"])
		}).
		Return(nil)

	order, err := orderSvc.UpdateOrder(ctx, &usecase.UpdateOrderInput{ID: id, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, updated, order)
}

func TestOrderService_UpdateOrder_PublishFailureIsSwallowed(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	orderSvc := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()
	id := uuid.New()
	reply := "تم الشحن"
	updated := &entity.Order{ID: id, Status: entity.OrderStatusPending, AdminReply: &reply}

	orderRepo.EXPECT().
		UpdateOrder(ctx, id, mock.AnythingOfType("repository.OrderUpdate")).
		Return(updated, nil)

	publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(errors.New("broker unreachable"))

	order, err := orderSvc.UpdateOrder(ctx, &usecase.UpdateOrderInput{ID: id, AdminReply: &reply})
	require.NoError(t, err)
	assert.Equal(t, updated, order)
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	orderSvc := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()
	id := uuid.New()
	reply := "تم الشحن"

	orderRepo.EXPECT().
		UpdateOrder(ctx, id, mock.AnythingOfType("repository.OrderUpdate")).
		Return(nil, repository.ErrOrderNotFound)

	order, err := orderSvc.UpdateOrder(ctx, &usecase.UpdateOrderInput{ID: id, AdminReply: &reply})
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, order)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	orderSvc := NewOrderService(orderRepo, publisher, discardLogger())

	ctx := context.Background()

	require.ErrorIs(t, orderSvc.DeleteOrder(ctx, uuid.Nil), domainerrors.ErrOrderIDRequired)

	id := uuid.New()
	orderRepo.EXPECT().
		DeleteOrder(ctx, id).
		Return(repository.ErrOrderNotFound)

	require.ErrorIs(t, orderSvc.DeleteOrder(ctx, id), domainerrors.ErrOrderNotFound)

	other := uuid.New()
	orderRepo.EXPECT().
		DeleteOrder(ctx, other).
		Return(nil)

	require.NoError(t, orderSvc.DeleteOrder(ctx, other))
}
