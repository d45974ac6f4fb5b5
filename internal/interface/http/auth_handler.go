package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cryptofolio/wallet-api/internal/application"
	"github.com/cryptofolio/wallet-api/internal/interface/middleware"
	"github.com/cryptofolio/wallet-api/internal/session"
	"github.com/cryptofolio/wallet-api/pkg/response"
	"github.com/cryptofolio/wallet-api/pkg/validation"
)

// AuthHandler serves signup, signin and signout.
type AuthHandler struct {
	Svc     *application.UserService
	Revoked session.RevocationList
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, revoked session.RevocationList, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Revoked: revoked, Logger: logger}
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=100"`
}

// SignUp handles POST /api/auth/signup. Its response bodies omit the
// success flag; existing clients depend on that shape.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToFieldErrors(err))
		return
	}

	res, err := h.Svc.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.SignupError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.SignupError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   res.Token,
		"user":    res.User,
	})
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToFieldErrors(err))
		return
	}

	res, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.Logger.WithError(err).Error("signin failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sign in successful",
		"data":    res,
	})
}

// SignOut handles POST /api/auth/signout. The presented token is
// revoked so it is never accepted again within this process, even
// though it stays cryptographically valid until expiry.
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := c.GetString(middleware.CtxTokenKey)
	if err := h.Revoked.Revoke(c.Request.Context(), token); err != nil {
		h.Logger.WithError(err).Error("token revocation failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sign out successful. Token has been invalidated.",
	})
}
