package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/cryptofolio/wallet-api/internal/interface/http"
	"github.com/cryptofolio/wallet-api/internal/interface/middleware"
	"github.com/cryptofolio/wallet-api/internal/session"
	"github.com/cryptofolio/wallet-api/pkg/helpers"
)

// WalletModule wires the wallet CRUD endpoints. Every route requires a
// valid, unrevoked bearer token.
type WalletModule struct {
	Handler *handlers.WalletHandler
	JWT     *helpers.JWTManager
	Revoked session.RevocationList
	Logger  *logrus.Logger
}

func NewWalletModule(h *handlers.WalletHandler, jwt *helpers.JWTManager, revoked session.RevocationList, logger *logrus.Logger) *WalletModule {
	return &WalletModule{Handler: h, JWT: jwt, Revoked: revoked, Logger: logger}
}

func (m *WalletModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/wallets")
	auth.Use(middleware.Auth(m.JWT, m.Revoked, m.Logger))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
