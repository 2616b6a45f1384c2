package handler

import (
	"net/http"

	"gearshop/internal/delivery/http/middleware"
	"gearshop/internal/delivery/http/response"
	"gearshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout handler.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Checkout places an order from the caller's cart ledger.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	// An authenticated caller's order is attributed to their identity
	// regardless of what the body claims.
	if claims := middleware.ClaimsFrom(c); claims != nil {
		input.UserID = claims.UID
	}

	order, err := h.uc.Checkout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}
