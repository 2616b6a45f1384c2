package handler

import (
	"log/slog"
	"net/http"

	"gearshop/internal/delivery/http/middleware"
	"gearshop/internal/delivery/http/response"
	"gearshop/internal/domain/service"
	"gearshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for account and session handlers.
type SessionHandler struct {
	uc       usecase.SessionUsecase
	provider service.IdentityProvider
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, provider service.IdentityProvider, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:       uc,
		provider: provider,
		logger:   logger,
	}
}

// Register handles the account registration request.
func (h *SessionHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Account registered successfully"
	if output.ProfileWarning != "" {
		message = output.ProfileWarning
	}

	return response.Success(c, http.StatusCreated, output, message)
}

// Me returns the authenticated caller's profile.
func (h *SessionHandler) Me(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	profile := c.Get(middleware.ContextKeyProfile)

	return response.Success(c, http.StatusOK, map[string]any{
		"uid":     claims.UID,
		"email":   claims.Email,
		"role":    claims.Role,
		"profile": profile,
	}, "")
}

type passwordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordReset issues a password reset link for the given email.
func (h *SessionHandler) PasswordReset(c echo.Context) error {
	var input passwordResetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.provider.PasswordResetLink(c.Request().Context(), input.Email)
	if err != nil {
		// Do not reveal whether the email has an account.
		h.logger.Warn("password reset link failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, map[string]string{"link": link},
		"If the email has an account, a reset link has been issued")
}
