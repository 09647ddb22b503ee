package handler

import (
	"net/http"

	"raseed/internal/delivery/http/response"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category management handlers.
type CategoryHandler struct {
	uc usecase.CatalogUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CatalogUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type categoryRequest struct {
	NameAr        string  `json:"name_ar"`
	DescriptionAr *string `json:"description_ar"`
	Icon          string  `json:"icon"`
	SortOrder     int     `json:"sort_order"`
	IsActive      *bool   `json:"is_active"`
}

func (r *categoryRequest) toInput() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		NameAr:        r.NameAr,
		DescriptionAr: r.DescriptionAr,
		Icon:          r.Icon,
		SortOrder:     r.SortOrder,
		IsActive:      r.IsActive,
	}
}

// List returns all categories ordered by sort order.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Get returns a single category.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrCategoryNotFound
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// Create validates and persists a new category.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// Update modifies an existing category.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrCategoryNotFound
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

// Delete removes a category, refusing while products still reference it.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrCategoryNotFound
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}
