package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slinkhq/slink-server/pkg/internal/http/exts"
	"github.com/slinkhq/slink-server/pkg/internal/models"
	"github.com/slinkhq/slink-server/pkg/internal/services"
)

// exchangeSessionToken stands in for the external identity provider callback:
// the account is upserted by email on first sign-in and handed a session token.
func exchangeSessionToken(c *fiber.Ctx) error {
	var data struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.GetOrCreateAccount(data.Email, data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	tk, err := services.CreateSessionToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   tk,
		"account": user,
	})
}

func getUserinfo(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	return c.JSON(fiber.Map{
		"account":      user,
		"is_onboarded": user.IsOnboarded(),
	})
}

func editUserinfo(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Nick string `json:"nick" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.UpdateAccountNick(user, data.Nick)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"account": user,
	})
}
