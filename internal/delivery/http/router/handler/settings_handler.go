package handler

import (
	"net/http"

	"gearshop/internal/delivery/http/response"
	"gearshop/internal/domain/entity"
	"gearshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for payment settings handlers.
type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get returns the current payment settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.uc.Fetch(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// Update merges a partial settings update. Updates that would disable every
// payment channel are rejected.
func (h *SettingsHandler) Update(c echo.Context) error {
	var patch entity.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	settings, err := h.uc.Update(c.Request().Context(), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings updated")
}
