package api_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slinkhq/slink-server/pkg/internal/services"
)

func TestExchangeSessionToken(t *testing.T) {
	resetTables()

	res, payload := doRequest(t, fiber.MethodPost, "/api/auth/token", "", fiber.Map{
		"email": "new@example.com",
		"name":  "Newcomer",
	})
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	require.NotEmpty(t, payload["token"])

	// The minted token works against protected endpoints right away.
	res, me := doRequest(t, fiber.MethodGet, "/api/users/me", payload["token"].(string), nil)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, false, me["is_onboarded"])
}

func TestExchangeSessionTokenBadEmail(t *testing.T) {
	resetTables()

	res, _ := doRequest(t, fiber.MethodPost, "/api/auth/token", "", fiber.Map{
		"email": "not-an-email",
	})
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestEditUserinfoOnboards(t *testing.T) {
	resetTables()
	account, err := services.GetOrCreateAccount("owner@example.com", "Owner")
	require.NoError(t, err)
	tk, err := services.CreateSessionToken(account)
	require.NoError(t, err)

	res, _ := doRequest(t, fiber.MethodPatch, "/api/users/me", tk, fiber.Map{
		"nick": "x",
	})
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res, payload := doRequest(t, fiber.MethodPatch, "/api/users/me", tk, fiber.Map{
		"nick": "Neighbor 101",
	})
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, true, payload["success"])

	res, me := doRequest(t, fiber.MethodGet, "/api/users/me", tk, nil)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, true, me["is_onboarded"])
}

func TestGetUserinfoUnauthenticated(t *testing.T) {
	resetTables()

	res, _ := doRequest(t, fiber.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
