package handler

import (
	"errors"
	"net/http"
	"strings"

	"gamestore/backend/internal/auth"
	"gamestore/backend/internal/i18n"
	"gamestore/backend/internal/logging"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
)

const minPasswordLength = 6

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Email           string `json:"email" binding:"required,email" example:"test@example.com"`
	Password        string `json:"password" binding:"required" example:"secret123"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"secret123"`
	FullName        string `json:"full_name" example:"Rina Wijaya"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// PasswordResetInput requests a recovery email.
type PasswordResetInput struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// PasswordUpdateInput sets a new password.
type PasswordUpdateInput struct {
	Password        string `json:"password" binding:"required" example:"secret123"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"secret123"`
}

// LanguageInput selects the interface language.
type LanguageInput struct {
	Language string `json:"language" binding:"required" example:"en"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string          `json:"message,omitempty"`
	Session *models.Session `json:"session,omitempty"`
}

// SessionResponse describes the signed-in caller.
type SessionResponse struct {
	User    *models.User    `json:"user"`
	Profile *models.Profile `json:"profile"`
	IsAdmin bool            `json:"is_admin"`
}

// endregion

// checkPasswords validates a new password pair and answers 400 on failure.
func (h *Handler) checkPasswords(c *gin.Context, password, confirm string) bool {
	if len(password) < minPasswordLength {
		h.fail(c, http.StatusBadRequest, "auth.passwordTooShort")
		return false
	}
	if password != confirm {
		h.fail(c, http.StatusBadRequest, "auth.passwordsDoNotMatch")
		return false
	}
	return true
}

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates an account. The session is omitted while email confirmation is pending.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Email already registered"
// @Failure      429 {object} ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return
	}
	if !h.checkPasswords(c, input.Password, input.ConfirmPassword) {
		return
	}

	session, err := h.repo.SignUp(c.Request.Context(), strings.TrimSpace(input.Email), input.Password, strings.TrimSpace(input.FullName))
	if err != nil {
		h.storeError(c, err, "common.error")
		return
	}

	if session == nil {
		c.JSON(http.StatusCreated, AuthResponse{Message: h.tr.Msg(c, "auth.checkEmail")})
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{Message: h.tr.Msg(c, "auth.accountCreatedSuccess"), Session: session})
}

// LoginUser godoc
// @Summary      Log in a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      429 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return
	}

	session, err := h.repo.SignIn(c.Request.Context(), strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		h.storeError(c, err, "auth.invalidCredentials")
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Session: session})
}

// LogoutUser godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/logout [post]
func (h *Handler) LogoutUser(c *gin.Context) {
	if err := h.repo.SignOut(auth.RequestContext(c), auth.BearerToken(c)); err != nil {
		h.storeError(c, err, "common.error")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: h.tr.Msg(c, "auth.signedOut")})
}

// RequestPasswordReset godoc
// @Summary      Request a password reset
// @Description  Sends a recovery link. Always succeeds so registered emails cannot be probed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body PasswordResetInput true "Email"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /auth/password-reset [post]
func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var input PasswordResetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return
	}

	redirectTo := strings.TrimRight(h.opts.SiteURL, "/") + "/reset-password"
	if err := h.repo.RequestPasswordReset(c.Request.Context(), strings.TrimSpace(input.Email), redirectTo); err != nil {
		logging.FromContext(c, h.log).WithError(err).Warn("password reset request failed")
	}
	c.JSON(http.StatusOK, MessageResponse{Message: h.tr.Msg(c, "auth.resetEmailSent")})
}

// UpdatePassword godoc
// @Summary      Set a new password
// @Description  Accepts a regular access token or the token from a recovery link.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PasswordUpdateInput true "New password"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/password [put]
func (h *Handler) UpdatePassword(c *gin.Context) {
	var input PasswordUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return
	}
	if !h.checkPasswords(c, input.Password, input.ConfirmPassword) {
		return
	}

	if err := h.repo.UpdatePassword(auth.RequestContext(c), auth.BearerToken(c), input.Password); err != nil {
		h.storeError(c, err, "common.error")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: h.tr.Msg(c, "auth.passwordUpdated")})
}

// GetSession godoc
// @Summary      Get the current session
// @Description  Returns the signed-in user and profile, including the admin flag.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} SessionResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/session [get]
func (h *Handler) GetSession(c *gin.Context) {
	user := auth.CurrentUser(c)
	profile, err := h.repo.GetProfile(auth.RequestContext(c), user.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeError(c, err, "common.error")
		return
	}
	c.JSON(http.StatusOK, SessionResponse{
		User:    user,
		Profile: profile,
		IsAdmin: profile != nil && profile.IsAdmin,
	})
}

// endregion

// SetLanguage godoc
// @Summary      Choose the interface language
// @Description  Stores the preference in a long-lived cookie. Supported: id, en.
// @Tags         language
// @Accept       json
// @Produce      json
// @Param        input body LanguageInput true "Language"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /language [put]
func (h *Handler) SetLanguage(c *gin.Context) {
	var input LanguageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return
	}
	lang, ok := i18n.Normalize(input.Language)
	if !ok {
		h.fail(c, http.StatusBadRequest, "language.unsupported")
		return
	}
	i18n.Remember(c, lang)
	c.JSON(http.StatusOK, MessageResponse{Message: h.tr.T(lang, "language.updated")})
}
