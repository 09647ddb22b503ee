package handler

import (
	"net/http"

	"raseed/internal/delivery/http/response"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product management handlers.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type productRequest struct {
	CategoryID    uuid.UUID `json:"category_id"`
	NameAr        string    `json:"name_ar"`
	DescriptionAr *string   `json:"description_ar"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	ImageURL      *string   `json:"image_url"`
	Icon          string    `json:"icon"`
	FilterTag     *string   `json:"filter_tag"`
	IsActive      *bool     `json:"is_active"`
}

func (r *productRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		CategoryID:    r.CategoryID,
		NameAr:        r.NameAr,
		DescriptionAr: r.DescriptionAr,
		Price:         r.Price,
		Currency:      r.Currency,
		ImageURL:      r.ImageURL,
		Icon:          r.Icon,
		FilterTag:     r.FilterTag,
		IsActive:      r.IsActive,
	}
}

// List returns a page of products, optionally filtered by search and category.
func (h *ProductHandler) List(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
		Search:     c.QueryParam("search"),
		CategoryID: queryUUID(c, "category_id"),
	}

	products, total, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items: products,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, "")
}

// ListFilterTags returns the distinct filter tags, optionally scoped to a category.
func (h *ProductHandler) ListFilterTags(c echo.Context) error {
	tags, err := h.uc.ListFilterTags(c.Request().Context(), queryUUID(c, "category_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "")
}

// Get returns a single product.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Create validates and persists a new product.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update modifies an existing product.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete permanently removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}
