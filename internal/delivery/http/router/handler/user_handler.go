package handler

import (
	"net/http"

	"raseed/internal/delivery/http/response"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for shopper directory handlers.
type UserHandler struct {
	uc usecase.DirectoryUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.DirectoryUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type setBlockedRequest struct {
	IsBlocked *bool `json:"is_blocked"`
}

// List returns a page of shopper profiles with identity provider emails merged in.
func (h *UserHandler) List(c echo.Context) error {
	input := &usecase.ListUsersInput{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Search: c.QueryParam("search"),
	}

	profiles, total, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items: profiles,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, "")
}

// Count returns the total number of shopper profiles.
func (h *UserHandler) Count(c echo.Context) error {
	count, err := h.uc.CountUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "")
}

// SetBlocked sets a shopper's block flag to an explicit value.
func (h *UserHandler) SetBlocked(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrUserIDRequired
	}

	var req setBlockedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid block input")
	}

	// The flag must be explicit; this is not a toggle.
	if req.IsBlocked == nil {
		return domainerrors.ErrBlockValueInvalid
	}

	profile, err := h.uc.SetBlocked(c.Request().Context(), id, *req.IsBlocked)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Block flag updated")
}
