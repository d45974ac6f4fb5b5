package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cryptofolio/wallet-api/internal/application"
	"github.com/cryptofolio/wallet-api/internal/interface/middleware"
	"github.com/cryptofolio/wallet-api/pkg/response"
	"github.com/cryptofolio/wallet-api/pkg/validation"
)

// WalletHandler serves the wallet CRUD endpoints. All routes run behind
// the auth middleware; the requesting user comes from the Gin context.
type WalletHandler struct {
	Svc    *application.WalletService
	Logger *logrus.Logger
}

func NewWalletHandler(svc *application.WalletService, logger *logrus.Logger) *WalletHandler {
	return &WalletHandler{Svc: svc, Logger: logger}
}

type createWalletRequest struct {
	Chain   string  `json:"chain" binding:"required,max=100"`
	Address string  `json:"address" binding:"required,max=255"`
	Tag     *string `json:"tag" binding:"omitempty,max=255"`
}

type updateWalletRequest struct {
	Chain   *string `json:"chain" binding:"omitempty,min=1,max=100"`
	Address *string `json:"address" binding:"omitempty,min=1,max=255"`
	Tag     *string `json:"tag" binding:"omitempty,max=255"`
}

// walletID validates the :id path parameter. A malformed id is a
// validation failure, not a lookup miss.
func walletID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.ValidationFailed(c, []response.FieldError{{Field: "id", Message: "Invalid wallet ID"}})
		return "", false
	}
	return id, true
}

func (h *WalletHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrWalletNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, application.ErrAddressTaken):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	default:
		h.Logger.WithError(err).Error("wallet operation failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// List handles GET /api/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	wallets, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wallets)
}

// Get handles GET /api/wallets/:id.
func (h *WalletHandler) Get(c *gin.Context) {
	id, ok := walletID(c)
	if !ok {
		return
	}
	userID := c.GetString(middleware.CtxUserIDKey)
	w, err := h.Svc.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Create handles POST /api/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req createWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToFieldErrors(err))
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	w, err := h.Svc.Create(c.Request.Context(), application.CreateWalletInput{
		UserID:  userID,
		Chain:   req.Chain,
		Address: req.Address,
		Tag:     req.Tag,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// Update handles PUT /api/wallets/:id. The patch is partial, but at
// least one field must be present.
func (h *WalletHandler) Update(c *gin.Context) {
	id, ok := walletID(c)
	if !ok {
		return
	}

	var req updateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToFieldErrors(err))
		return
	}
	// blank chain/address are treated as absent; a blank tag clears it
	if req.Chain != nil && *req.Chain == "" {
		req.Chain = nil
	}
	if req.Address != nil && *req.Address == "" {
		req.Address = nil
	}
	if req.Chain == nil && req.Address == nil && req.Tag == nil {
		response.Error(c, http.StatusBadRequest, "At least one field (chain, address, tag) must be provided")
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	w, err := h.Svc.Update(c.Request.Context(), id, userID, application.UpdateWalletInput{
		Chain:   req.Chain,
		Address: req.Address,
		Tag:     req.Tag,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Delete handles DELETE /api/wallets/:id.
func (h *WalletHandler) Delete(c *gin.Context) {
	id, ok := walletID(c)
	if !ok {
		return
	}
	userID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), id, userID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Wallet deleted successfully",
	})
}
