package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/slinkhq/slink-server/pkg/internal/http/exts"
	"github.com/slinkhq/slink-server/pkg/internal/models"
	"github.com/slinkhq/slink-server/pkg/internal/services"
)

func listQrCode(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	if codes, err := services.ListQrCode(user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(codes)
	}
}

func createQrCode(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Name          string `json:"name" validate:"required"`
		StatusMessage string `json:"status_message"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	code, err := services.NewQrCode(user, data.Name, data.StatusMessage)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateQrCodeName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   "DUPLICATE_NAME",
				"message": err.Error(),
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"qr_code": code,
		"url":     services.GetQrCodeUrl(code),
	})
}

func editQrCode(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("qrcodeId", 0)

	code, err := services.GetQrCode(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if code.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "you are not the owner of this qr code")
	}

	var data struct {
		Name          *string `json:"name"`
		StatusMessage *string `json:"status_message"`
		IsActive      *bool   `json:"is_active"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if data.Name != nil {
		code.Name = *data.Name
	}
	if data.StatusMessage != nil {
		code.StatusMessage = *data.StatusMessage
	}
	if data.IsActive != nil {
		code.IsActive = *data.IsActive
	}

	code, err = services.UpdateQrCode(code)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateQrCodeName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   "DUPLICATE_NAME",
				"message": err.Error(),
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"qr_code": code,
	})
}

// getQrCodeProfile feeds the public contact page a visitor lands on after a
// scan. It deliberately exposes only what that page renders.
func getQrCodeProfile(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("qrcodeId", 0)

	code, err := services.GetQrCode(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "qr code was not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"name":           code.Name,
		"status_message": code.StatusMessage,
		"is_active":      code.IsActive,
		"owner_nick":     code.Account.Nick,
	})
}
