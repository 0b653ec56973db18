package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/slinkhq/slink-server/pkg/internal/http/exts"
	"github.com/slinkhq/slink-server/pkg/internal/models"
	"github.com/slinkhq/slink-server/pkg/internal/services"
)

func createCallRequest(c *fiber.Ctx) error {
	var data struct {
		QrCodeID uint   `json:"qr_code_id" validate:"required"`
		RoomName string `json:"room_name" validate:"required"`
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

	call, err := services.NewCallRequest(code, data.RoomName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"call_id": call.ID,
	})
}

// pollIncomingCall is a level-triggered read: a still-waiting, still-fresh
// call is reported on every poll until it is answered or expires. Without a
// session it reports null instead of failing, matching the dashboard contract.
func pollIncomingCall(c *fiber.Ctx) error {
	tk := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(tk) == 0 {
		tk = c.Cookies("slink_session")
	}

	user, err := services.Authenticate(tk)
	if err != nil {
		return c.JSON(fiber.Map{"incoming_call": nil})
	}

	call, err := services.PollIncomingCall(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if call == nil {
		return c.JSON(fiber.Map{"incoming_call": nil})
	}

	return c.JSON(fiber.Map{
		"incoming_call": fiber.Map{
			"id":        call.ID,
			"room_name": call.ExternalID,
			"qr_name":   call.QrCode.Name,
		},
	})
}

func respondToCall(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("callId", 0)

	var data struct {
		Action string `json:"action" validate:"required,oneof=accept reject"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	call, err := services.GetCall(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "call was not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if _, err := services.RespondToCall(call, data.Action == "accept"); err != nil {
		if errors.Is(err, services.ErrCallAlreadySettled) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}

func getCall(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("callId", 0)

	call, err := services.GetCall(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if call.QrCode.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "this call does not belong to you")
	}

	if call.Status == models.CallStatusConnected {
		if res, err := services.GetVoiceRoomParticipants(call.ExternalID); err == nil {
			call.Participants = res
		}
	}

	return c.JSON(call)
}

func listCall(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if calls, err := services.ListCall(user, take, offset); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(calls)
	}
}

func exchangeRoomToken(c *fiber.Ctx) error {
	room := c.Query("room")
	username := c.Query("username")
	if len(room) == 0 || len(username) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "room and username are required")
	}

	tk, err := services.EncodeRoomToken(room, username)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":    tk,
		"endpoint": viper.GetString("calling.endpoint"),
	})
}
