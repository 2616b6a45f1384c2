package handler

import (
	"net/http"

	"gearshop/internal/delivery/http/response"
	"gearshop/internal/domain/entity"
	"gearshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the role-gated management handlers.
// The router mounts these behind the admin and superadmin gates.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// --- Products ---

// CreateProduct handles product creation.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct handles product replacement.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct handles product deletion.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// ListProducts returns the full product collection from the store, not the
// mirror, so admins always see the authoritative state.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		products, err := h.uc.GetByCategory(c.Request().Context(), category)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, products, "")
	}

	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns a single product from the store.
func (h *AdminHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// --- Users ---

// ListUsers returns all profile records.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

type setRoleInput struct {
	Role entity.Role `json:"role" validate:"required"`
}

// SetUserRole changes a profile's role. Mounted behind the superadmin gate.
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	var input setRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := h.uc.SetUserRole(c.Request().Context(), c.Param("uid"), input.Role); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role updated")
}

// --- Home content ---

// SaveHeroSlide creates or updates a hero slide.
func (h *AdminHandler) SaveHeroSlide(c echo.Context) error {
	var slide *entity.HeroSlide
	if err := c.Bind(&slide); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero slide input")
	}

	saved, err := h.uc.SaveHeroSlide(c.Request().Context(), slide)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Hero slide saved")
}

// DeleteHeroSlide removes a hero slide.
func (h *AdminHandler) DeleteHeroSlide(c echo.Context) error {
	if err := h.uc.DeleteHeroSlide(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Hero slide deleted")
}

// SaveHighlight creates or updates a highlight tile.
func (h *AdminHandler) SaveHighlight(c echo.Context) error {
	var highlight *entity.Highlight
	if err := c.Bind(&highlight); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid highlight input")
	}

	saved, err := h.uc.SaveHighlight(c.Request().Context(), highlight)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Highlight saved")
}

// DeleteHighlight removes a highlight tile.
func (h *AdminHandler) DeleteHighlight(c echo.Context) error {
	if err := h.uc.DeleteHighlight(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Highlight deleted")
}

// SaveBrandStory creates or updates a brand story block.
func (h *AdminHandler) SaveBrandStory(c echo.Context) error {
	var story *entity.BrandStory
	if err := c.Bind(&story); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand story input")
	}

	saved, err := h.uc.SaveBrandStory(c.Request().Context(), story)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Brand story saved")
}

// DeleteBrandStory removes a brand story block.
func (h *AdminHandler) DeleteBrandStory(c echo.Context) error {
	if err := h.uc.DeleteBrandStory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Brand story deleted")
}

// --- Orders ---

// ListOrders returns all orders, newest first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

type setOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// SetOrderStatus changes an order's status. Mounted behind the superadmin
// gate.
func (h *AdminHandler) SetOrderStatus(c echo.Context) error {
	var input setOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.SetOrderStatus(c.Request().Context(), c.Param("id"), input.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}
