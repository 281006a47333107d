package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabquiz/logger"
)

func serve(t *testing.T, exposeStack bool, handler fiber.Handler) (int, Envelope) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNop(), exposeStack)})
	app.Get("/x", handler)
	app.Use(NotFoundHandler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestAppErrors(t *testing.T) {
	status, env := serve(t, false, func(c *fiber.Ctx) error { return ValidationError("bad input") })
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "bad input", env.Error)
	assert.Equal(t, CodeValidation, env.Code)

	status, env = serve(t, false, func(c *fiber.Ctx) error { return NotFoundError("Year 1400 not found") })
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, CodeNotFound, env.Code)
	assert.Equal(t, "Year 1400 not found", env.Error)
}

func TestInternalErrorHidesCause(t *testing.T) {
	status, env := serve(t, false, func(c *fiber.Ctx) error { return InternalError(errors.New("disk on fire")) })
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Error)
	assert.Equal(t, CodeInternal, env.Code)
	assert.Nil(t, env.Details)

	status, env = serve(t, false, func(c *fiber.Ctx) error { return errors.New("plain") })
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Error)
}

func TestInternalErrorExposesStackInDevelopment(t *testing.T) {
	_, env := serve(t, true, func(c *fiber.Ctx) error { return InternalError(errors.New("disk on fire")) })
	require.NotNil(t, env.Details)
	assert.Equal(t, "disk on fire", env.Details["cause"])
	assert.Equal(t, "Internal server error", env.Error)
	assert.NotEmpty(t, env.Details["stack"])

	_, env = serve(t, true, func(c *fiber.Ctx) error { return errors.New("plain") })
	require.NotNil(t, env.Details)
	assert.Equal(t, "plain", env.Details["cause"])

	_, env = serve(t, true, func(c *fiber.Ctx) error { return ValidationError("bad") })
	assert.Nil(t, env.Details)
}

func TestFiberErrors(t *testing.T) {
	status, env := serve(t, false, func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusMethodNotAllowed, "nope") })
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, CodeValidation, env.Code)
	assert.Equal(t, "nope", env.Error)
}

func TestJsonResponseEnvelope(t *testing.T) {
	status, env := serve(t, false, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"n": 1})
	})
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Message)
	assert.Empty(t, env.Error)
	assert.NotEmpty(t, env.Timestamp)

	_, env = serve(t, false, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusBadRequest, false, "broken", nil)
	})
	assert.False(t, env.Success)
	assert.Equal(t, "broken", env.Error)
	assert.Nil(t, env.Data)
}
