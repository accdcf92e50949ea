package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"laraigo_backend/internals/features/portal/capsules/model"
	"laraigo_backend/internals/features/portal/capsules/route"
)

func setupApp(t *testing.T) *fiber.App {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CapsuleModel{}))

	app := fiber.New()
	route.CapsuleUserRoutes(app.Group("/api"), db)
	route.CapsuleAdminRoutes(app.Group("/api"), db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCapsuleRoundTrip(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/capsules", fiber.Map{
		"title":       "Onboarding",
		"videoUrl":    "https://videos.example.com/onboarding",
		"description": "Primeros pasos",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotEmpty(t, created["_id"])
	assert.Equal(t, "Onboarding", created["title"])

	resp, raw = doJSON(t, app, http.MethodGet, "/api/capsules", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created["_id"], list[0]["_id"])

	id := created["_id"].(string)
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/capsules/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/capsules", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw))
}

func TestCapsuleUpdateCarriesForwardOmittedAndEmptyFields(t *testing.T) {
	app := setupApp(t)

	_, raw := doJSON(t, app, http.MethodPost, "/api/capsules", fiber.Map{
		"title":       "Integraciones",
		"videoUrl":    "https://videos.example.com/integraciones",
		"downloadUrl": "https://drive.example.com/integraciones",
	})
	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	id := created["_id"].(string)

	// title only: videoUrl and downloadUrl keep their stored values
	resp, raw := doJSON(t, app, http.MethodPut, "/api/capsules/"+id, fiber.Map{
		"title": "Integraciones v2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Integraciones v2", updated["title"])
	assert.Equal(t, "https://videos.example.com/integraciones", updated["videoUrl"])
	assert.Equal(t, "https://drive.example.com/integraciones", updated["downloadUrl"])

	// empty string is "no change", not "clear"
	resp, raw = doJSON(t, app, http.MethodPut, "/api/capsules/"+id, fiber.Map{
		"videoUrl":    "",
		"downloadUrl": "",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "https://videos.example.com/integraciones", updated["videoUrl"])
	assert.Equal(t, "https://drive.example.com/integraciones", updated["downloadUrl"])
}

func TestCapsuleCreateRequiresTitleAndVideoURL(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/capsules", fiber.Map{
		"description": "sin título",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotEmpty(t, body["message"])

	// empty string fails required just like a missing field
	resp, _ = doJSON(t, app, http.MethodPost, "/api/capsules", fiber.Map{
		"title":    "",
		"videoUrl": "https://videos.example.com/x",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCapsuleNotFoundDoesNotMutate(t *testing.T) {
	app := setupApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/capsules", fiber.Map{
		"title":    "Única",
		"videoUrl": "https://videos.example.com/unica",
	})

	resp, raw := doJSON(t, app, http.MethodPut, "/api/capsules/"+uuid.NewString(), fiber.Map{
		"title": "no existe",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Capsule not found"}`, string(raw))

	resp, raw = doJSON(t, app, http.MethodDelete, "/api/capsules/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Capsule not found"}`, string(raw))

	_, raw = doJSON(t, app, http.MethodGet, "/api/capsules", nil)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Única", list[0]["title"])
}

func TestCapsuleUnknownFieldsAreDropped(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/capsules", fiber.Map{
		"title":    "Permisos",
		"videoUrl": "https://videos.example.com/permisos",
		"isAdmin":  true,
		"_id":      "attacker-chosen",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotEqual(t, "attacker-chosen", created["_id"])
	assert.NotContains(t, created, "isAdmin")
}
