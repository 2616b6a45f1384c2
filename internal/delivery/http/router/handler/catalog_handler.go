package handler

import (
	"net/http"

	"gearshop/internal/delivery/http/response"
	"gearshop/internal/usecase"

	domainerrors "gearshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the read-side catalog endpoints from the live
// mirror; no request here touches the remote store directly.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	admin   usecase.AdminUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, admin usecase.AdminUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, admin: admin}
}

// ListProducts returns the current product snapshot, optionally filtered by
// the category query parameter.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products := h.catalog.Products()

	if category := c.QueryParam("category"); category != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": products,
		"loading":  h.catalog.Loading(),
	}, "")
}

// GetProduct returns a single product from the snapshot.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails("product not found"))
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListCategories returns the derived category view.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Categories(), "")
}

// HomeContent returns the enabled homepage content blocks.
func (h *CatalogHandler) HomeContent(c echo.Context) error {
	view, err := h.admin.HomeContent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
