package handler

import (
	"net/http"

	"gearshop/internal/delivery/http/response"
	"gearshop/internal/domain/entity"
	"gearshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers. Cart keys are
// opaque caller-chosen identifiers; anonymous visitors use a generated key
// and signed-in users their UID.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get returns the ledger snapshot for the cart key.
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.uc.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem merges a line into the ledger.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.Add(c.Request().Context(), c.Param("key"), entity.CartItem{
		ProductID: input.ProductID,
		Name:      input.Name,
		Price:     input.Price,
		Image:     input.Image,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

type setQuantityInput struct {
	Quantity int `json:"quantity"`
}

// SetQuantity applies a clamped quantity to a line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var input setQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.uc.SetQuantity(c.Request().Context(), c.Param("key"), c.Param("productId"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// RemoveItem deletes a line from the ledger.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.uc.Remove(c.Request().Context(), c.Param("key"), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Clear empties the ledger.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context(), c.Param("key")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
