package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/cryptofolio/wallet-api/internal/application"
	"github.com/cryptofolio/wallet-api/internal/infrastructure/memory"
	handlers "github.com/cryptofolio/wallet-api/internal/interface/http"
	"github.com/cryptofolio/wallet-api/internal/router"
	"github.com/cryptofolio/wallet-api/internal/router/modules"
	"github.com/cryptofolio/wallet-api/internal/session"
	"github.com/cryptofolio/wallet-api/pkg/helpers"
	"github.com/cryptofolio/wallet-api/pkg/validation"
)

// newTestServer wires the real router modules over in-memory storage
// and an in-memory revocation list.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("test-secret", 15*time.Minute)
	revoked := session.NewMemoryList()
	userRepo := memory.NewUserRepository()
	walletRepo := memory.NewWalletRepository()

	userSvc := application.NewUserService(userRepo, jwt, logger)
	walletSvc := application.NewWalletService(walletRepo, userRepo, logger)

	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, revoked, logger), jwt, revoked, logger))
	reg.Add(modules.NewWalletModule(handlers.NewWalletHandler(walletSvc, logger), jwt, revoked, logger))
	reg.RegisterAll()
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signUp registers a user and returns the bearer token.
func signUp(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createWallet creates a wallet for the token's user and returns its id.
func createWallet(t *testing.T, r *gin.Engine, token, chain, address string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/wallets", token, gin.H{
		"chain":   chain,
		"address": address,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}
