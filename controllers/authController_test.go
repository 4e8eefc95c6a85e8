package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/models"
	"github.com/endabelyu/nakama-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Credential{}, &models.Product{}, &models.ProductImage{},
		&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{},
	))

	cfg := &config.Config{JWTSecret: "test-secret"}

	server := gin.New()
	routes.AuthRoutes(server, db, cfg)
	routes.CartRoutes(server, db, cfg)
	routes.OrderRoutes(server, db, cfg)

	return server, db
}

func doJSON(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

type envelope struct {
	Ok      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

func registerBody(email string) gin.H {
	return gin.H{
		"name":            "Monkey D. Luffy",
		"email":           email,
		"password":        "Password123!",
		"confirmPassword": "Password123!",
	}
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	server, _ := setupTestServer(t)

	recorder := doJSON(t, server, http.MethodPost, "/auth/register", "", registerBody("luffy@example.com"))
	require.Equal(t, http.StatusCreated, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.True(t, env.Ok)

	recorder = doJSON(t, server, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "luffy@example.com",
		"password": "Password123!",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	env = decodeEnvelope(t, recorder)
	require.True(t, env.Ok)

	var loginData struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	require.NotEmpty(t, loginData.Token)

	// The token also comes back as a cookie.
	cookies := recorder.Result().Cookies()
	var tokenCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == "token" {
			tokenCookie = cookie
		}
	}
	require.NotNil(t, tokenCookie)
	assert.Equal(t, loginData.Token, tokenCookie.Value)

	recorder = doJSON(t, server, http.MethodGet, "/auth/me", loginData.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	env = decodeEnvelope(t, recorder)
	assert.True(t, env.Ok)

	var profile models.PublicUser
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "luffy@example.com", profile.Email)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	server, db := setupTestServer(t)

	body := registerBody("luffy@example.com")
	body["confirmPassword"] = "Different123!"

	recorder := doJSON(t, server, http.MethodPost, "/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Ok)

	// The mismatch is rejected before the service: no user row exists.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLoginWithBadCredentials(t *testing.T) {
	server, _ := setupTestServer(t)

	doJSON(t, server, http.MethodPost, "/auth/register", "", registerBody("luffy@example.com"))

	recorder := doJSON(t, server, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "luffy@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Ok)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server, _ := setupTestServer(t)

	recorder := doJSON(t, server, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/carts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
