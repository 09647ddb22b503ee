package handler

import (
	"net/http"

	"raseed/internal/delivery/http/response"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order ledger handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type updateOrderRequest struct {
	Status     *string `json:"status"`
	AdminReply *string `json:"admin_reply"`
}

// List returns a page of orders with the customer profile joined.
func (h *OrderHandler) List(c echo.Context) error {
	input := &usecase.ListOrdersInput{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Status: c.QueryParam("status"),
	}

	orders, total, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items: orders,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, "")
}

// Update applies status and admin reply changes to an order.
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrOrderIDRequired
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), &usecase.UpdateOrderInput{
		ID:         id,
		Status:     req.Status,
		AdminReply: req.AdminReply,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated")
}

// Delete permanently removes an order.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrOrderIDRequired
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}
