package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp_Success(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	r := newTestServer(t)
	signUp(t, r, "a@x.com", "secret1")

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "A@X.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "User with this email already exists", body["error"])
	// signup errors historically carry no success flag
	assert.NotContains(t, body, "success")
}

func TestSignUp_Validation(t *testing.T) {
	r := newTestServer(t)

	tests := []struct {
		name  string
		body  gin.H
		field string
	}{
		{"missing email", gin.H{"password": "secret1"}, "email"},
		{"bad email", gin.H{"email": "not-an-email", "password": "secret1"}, "email"},
		{"short password", gin.H{"email": "a@x.com", "password": "12345"}, "password"},
		{"missing password", gin.H{"email": "a@x.com"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Validation failed", body["error"])
			errs, ok := body["errors"].([]any)
			require.True(t, ok)
			require.NotEmpty(t, errs)
			first := errs[0].(map[string]any)
			assert.Equal(t, tt.field, first["field"])
		})
	}
}

func TestSignIn_Success(t *testing.T) {
	r := newTestServer(t)
	signUp(t, r, "a@x.com", "secret1")

	w := doJSON(t, r, http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Sign in successful", body["message"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
}

func TestSignIn_WrongPasswordSameMessageAsUnknownEmail(t *testing.T) {
	r := newTestServer(t)
	signUp(t, r, "a@x.com", "secret1")

	wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "a@x.com",
		"password": "wrong-password",
	})
	unknown := doJSON(t, r, http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "nobody@x.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, "Invalid email or password", decode(t, wrongPass)["error"])
	assert.Equal(t, "Invalid email or password", decode(t, unknown)["error"])
}

func TestSignOut_RequiresAuth(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", decode(t, w)["error"])
}

func TestSignOut_InvalidatesToken(t *testing.T) {
	r := newTestServer(t)
	token := signUp(t, r, "a@x.com", "secret1")

	w := doJSON(t, r, http.MethodPost, "/api/auth/signout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Sign out successful. Token has been invalidated.", body["message"])

	// the same token is rejected from now on
	after := doJSON(t, r, http.MethodGet, "/api/wallets", token, nil)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
	assert.Contains(t, decode(t, after)["error"], "invalidated")

	// signing out twice with the same token is also rejected
	again := doJSON(t, r, http.MethodPost, "/api/auth/signout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, again.Code)
}

func TestEndToEnd_SignupWalletSignout(t *testing.T) {
	r := newTestServer(t)

	token := signUp(t, r, "a@x.com", "secret1")
	createWallet(t, r, token, "Ethereum", "0xAAA")

	list := doJSON(t, r, http.MethodGet, "/api/wallets", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var wallets []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &wallets))
	require.Len(t, wallets, 1)
	assert.Equal(t, "Ethereum", wallets[0]["chain"])
	assert.Equal(t, "0xAAA", wallets[0]["address"])

	signout := doJSON(t, r, http.MethodPost, "/api/auth/signout", token, nil)
	require.Equal(t, http.StatusOK, signout.Code)

	after := doJSON(t, r, http.MethodGet, "/api/wallets", token, nil)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
	assert.Contains(t, decode(t, after)["error"], "invalidated")
}
