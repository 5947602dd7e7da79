package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestGetID(t *testing.T) {
	c := BaseAPIController{}
	app := fiber.New()
	var gotID string
	var gotErr error
	app.Get("/items/:id", func(ctx *fiber.Ctx) error {
		gotID, gotErr = c.GetID(ctx)
		return nil
	})

	t.Run("valid uuid", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest("GET", "/items/0e9dcf64-3bd3-4e0b-9a3c-0a8f13a4d3b1", nil))
		require.NoError(t, err)
		require.NoError(t, gotErr)
		require.Equal(t, "0e9dcf64-3bd3-4e0b-9a3c-0a8f13a4d3b1", gotID)
	})

	// route words like "export" must not reach the database as an id
	t.Run("not a uuid", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest("GET", "/items/export", nil))
		require.NoError(t, err)
		require.Error(t, gotErr)
	})
}
