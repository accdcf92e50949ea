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

	"laraigo_backend/internals/features/portal/categories/model"
	"laraigo_backend/internals/features/portal/categories/route"
)

func setupApp(t *testing.T) *fiber.App {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CategoryModel{}))

	app := fiber.New()
	route.CategoryUserRoutes(app.Group("/api"), db)
	route.CategoryAdminRoutes(app.Group("/api"), db)
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

func TestCategoryCreateAssignsCreatedAt(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{
		"title":       "Casos de Uso",
		"description": "Casos de uso del producto",
		"image":       "https://cdn.example.com/casos.png",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotEmpty(t, created["_id"])
	assert.NotEmpty(t, created["createdAt"], "store assigns the creation timestamp")
}

func TestCategoryCreateRequiresDescriptionAndImage(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{
		"title": "Sólo título",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryUpdateCarriesForward(t *testing.T) {
	app := setupApp(t)

	_, raw := doJSON(t, app, http.MethodPost, "/api/categories", fiber.Map{
		"title":       "Recursos Gráficos",
		"description": "Logos y plantillas",
		"image":       "https://cdn.example.com/recursos.png",
		"link":        "/recursos",
	})
	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	id := created["_id"].(string)

	resp, raw := doJSON(t, app, http.MethodPut, "/api/categories/"+id, fiber.Map{
		"description": "Logos, plantillas y membretes",
		"image":       "",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Logos, plantillas y membretes", updated["description"])
	assert.Equal(t, "https://cdn.example.com/recursos.png", updated["image"], "empty string keeps the stored image")
	assert.Equal(t, "/recursos", updated["link"])
}

func TestCategoryNotFound(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPut, "/api/categories/"+uuid.NewString(), fiber.Map{"title": "x"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Category not found"}`, string(raw))
}
