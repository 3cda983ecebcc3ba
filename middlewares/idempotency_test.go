package middlewares_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"invoicing-backend/database"
	"invoicing-backend/middlewares"
	"invoicing-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The replay guard's guarantees depend on the composite unique index and on
// real transaction semantics, so these tests need Postgres. Set
// TEST_DATABASE_URL to run them.
func openIdempotencyTestDB(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping idempotency integration tests")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`DROP INDEX IF EXISTS idx_idempotency_keys_key`).Error)
	require.NoError(t, db.AutoMigrate(&models.IdempotencyKey{}))
	require.NoError(t, db.Exec(`DELETE FROM idempotency_keys`).Error)
	database.DB = db
}

func newIdempotencyApp(companyID uint, calls *int) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("companyID", companyID)
		c.Locals("userID", "user-1")
		return c.Next()
	})
	app.Use(middlewares.Idempotency())
	app.Post("/invoice", func(c *fiber.Ctx) error {
		*calls++
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"calls": *calls})
	})
	return app
}

func postWithKey(t *testing.T, app *fiber.App, key string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/invoice", strings.NewReader(`{"rate":"100"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", key)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIdempotencyReplayDoesNotRerunHandler(t *testing.T) {
	openIdempotencyTestDB(t)
	calls := 0
	app := newIdempotencyApp(1, &calls)

	firstStatus, firstBody := postWithKey(t, app, "create-1")
	secondStatus, secondBody := postWithKey(t, app, "create-1")

	require.Equal(t, 1, calls, "replaying a completed key must not run the handler again")
	assert.Equal(t, firstStatus, secondStatus)
	assert.Equal(t, firstBody, secondBody, "replay must serve the stored response")
}

func TestIdempotencyKeysAreScopedPerCompany(t *testing.T) {
	openIdempotencyTestDB(t)
	callsA, callsB := 0, 0
	appA := newIdempotencyApp(1, &callsA)
	appB := newIdempotencyApp(2, &callsB)

	statusA, _ := postWithKey(t, appA, "shared-key")
	statusB, _ := postWithKey(t, appB, "shared-key")

	assert.Equal(t, fiber.StatusCreated, statusA)
	assert.Equal(t, fiber.StatusCreated, statusB, "one company's key must not block another's")
	assert.Equal(t, 1, callsA)
	assert.Equal(t, 1, callsB)
}

func TestIdempotencyKeyReuseWithDifferentRequest(t *testing.T) {
	openIdempotencyTestDB(t)
	calls := 0
	app := newIdempotencyApp(1, &calls)

	status, _ := postWithKey(t, app, "reuse-1")
	require.Equal(t, fiber.StatusCreated, status)

	req := httptest.NewRequest(http.MethodPost, "/invoice", strings.NewReader(`{"rate":"999"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "reuse-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, 1, calls)
}
