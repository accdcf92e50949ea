package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"laraigo_backend/internals/configs"
	"laraigo_backend/internals/features/users/auth/route"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	configs.JWTSecret = "test-secret"
	configs.AdminEmail = "admin@laraigo.com"
	configs.AdminPasswordHash = string(hash)

	app := fiber.New()
	route.AuthRoutes(app, nil)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body any) (*http.Response, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestLoginIssuesToken(t *testing.T) {
	app := setupApp(t)

	resp, raw := postLogin(t, app, fiber.Map{
		"email":    "admin@laraigo.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotEmpty(t, body["token"])
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	app := setupApp(t)

	resp, _ := postLogin(t, app, fiber.Map{
		"email":    "ADMIN@Laraigo.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := setupApp(t)

	resp, raw := postLogin(t, app, fiber.Map{
		"email":    "admin@laraigo.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Invalid email or password"}`, string(raw))

	// wrong email gets the same undifferentiated message
	resp, raw = postLogin(t, app, fiber.Map{
		"email":    "intruder@laraigo.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Invalid email or password"}`, string(raw))
}

func TestLoginValidatesBody(t *testing.T) {
	app := setupApp(t)

	resp, _ := postLogin(t, app, fiber.Map{"email": "not-an-email", "password": "hunter2"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = postLogin(t, app, fiber.Map{"email": "admin@laraigo.com"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
