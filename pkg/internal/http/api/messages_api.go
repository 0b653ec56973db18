package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/slinkhq/slink-server/pkg/internal/http/exts"
	"github.com/slinkhq/slink-server/pkg/internal/models"
	"github.com/slinkhq/slink-server/pkg/internal/services"
)

func leaveMessage(c *fiber.Ctx) error {
	var data struct {
		QrCodeID   uint           `json:"qr_code_id" validate:"required"`
		Content    string         `json:"content" validate:"required"`
		SenderName string         `json:"sender_name"`
		Metadata   map[string]any `json:"metadata"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	code, err := services.GetQrCode(data.QrCodeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "qr code was not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else if !code.IsActive {
		return fiber.NewError(fiber.StatusBadRequest, "this qr code is currently deactivated")
	}

	if _, err := services.NewMessage(code, data.Content, data.SenderName, data.Metadata); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}

func listMessage(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if messages, err := services.ListMessage(user, take, offset); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(messages)
	}
}
