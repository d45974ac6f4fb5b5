package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/cryptofolio/wallet-api/internal/interface/http"
	"github.com/cryptofolio/wallet-api/internal/interface/middleware"
	"github.com/cryptofolio/wallet-api/internal/session"
	"github.com/cryptofolio/wallet-api/pkg/helpers"
)

// AuthModule wires the auth endpoints.
// Public: POST /api/auth/signup, POST /api/auth/signin
// Protected: POST /api/auth/signout
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Revoked session.RevocationList
	Logger  *logrus.Logger
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, revoked session.RevocationList, logger *logrus.Logger) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Revoked: revoked, Logger: logger}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.SignUp)
	rg.POST("/auth/signin", m.Handler.SignIn)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Revoked, m.Logger))
	{
		auth.POST("/auth/signout", m.Handler.SignOut)
	}
}
