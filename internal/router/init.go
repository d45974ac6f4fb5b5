package router

import (
	"github.com/cryptofolio/wallet-api/internal/application"
	"github.com/cryptofolio/wallet-api/internal/container"
	pginfra "github.com/cryptofolio/wallet-api/internal/infrastructure/postgres"
	handlers "github.com/cryptofolio/wallet-api/internal/interface/http"
	"github.com/cryptofolio/wallet-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	revoked := container.GetRevocation()

	userRepo := pginfra.NewUserRepository(pool)
	walletRepo := pginfra.NewWalletRepository(pool)

	userSvc := application.NewUserService(userRepo, jwt, logger)
	walletSvc := application.NewWalletService(walletRepo, userRepo, logger)

	authHandler := handlers.NewAuthHandler(userSvc, revoked, logger)
	walletHandler := handlers.NewWalletHandler(walletSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, jwt, revoked, logger))
	r.Add(modules.NewWalletModule(walletHandler, jwt, revoked, logger))
}
