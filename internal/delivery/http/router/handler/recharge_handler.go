package handler

import (
	"net/http"

	"raseed/internal/delivery/http/response"
	"raseed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RechargeHandler holds dependencies for recharge code handlers.
type RechargeHandler struct {
	uc usecase.RechargeUsecase
}

// NewRechargeHandler is the constructor for RechargeHandler, injected by Fx.
func NewRechargeHandler(uc usecase.RechargeUsecase) *RechargeHandler {
	return &RechargeHandler{uc: uc}
}

type issueBatchRequest struct {
	Amount      int64 `json:"amount"`
	Count       int   `json:"count"`
	ExpiresDays *int  `json:"expires_days"`
	WithQR      bool  `json:"with_qr"`
}

// IssueBatch generates and persists a batch of recharge codes. The response
// is the only place the plaintext codes ever appear.
func (h *RechargeHandler) IssueBatch(c echo.Context) error {
	var req issueBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch input")
	}

	batch, err := h.uc.IssueBatch(c.Request().Context(), &usecase.IssueBatchInput{
		Amount:      req.Amount,
		Count:       req.Count,
		ExpiresDays: req.ExpiresDays,
		WithQR:      req.WithQR,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, batch, "Batch issued")
}

// List returns a page of issued code rows (hashes only).
func (h *RechargeHandler) List(c echo.Context) error {
	input := &usecase.ListCodesInput{
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
		BatchID: c.QueryParam("batch_id"),
		Status:  c.QueryParam("status"),
	}

	codes, total, err := h.uc.ListCodes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items: codes,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, "")
}
