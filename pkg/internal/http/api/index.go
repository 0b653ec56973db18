package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		api.Post("/auth/token", exchangeSessionToken)

		api.Get("/users/me", authMiddleware, getUserinfo)
		api.Patch("/users/me", authMiddleware, editUserinfo)

		qrcodes := api.Group("/qrcodes").Name("QR Codes API")
		{
			qrcodes.Get("/", authMiddleware, listQrCode)
			qrcodes.Post("/", authMiddleware, createQrCode)
			qrcodes.Patch("/:qrcodeId", authMiddleware, editQrCode)
			qrcodes.Get("/:qrcodeId/public", getQrCodeProfile)
		}

		calls := api.Group("/calls").Name("Calls API")
		{
			calls.Get("/", authMiddleware, listCall)
			calls.Get("/incoming", pollIncomingCall)
			calls.Get("/token", exchangeRoomToken)
			calls.Get("/:callId", authMiddleware, getCall)
			calls.Post("/", createCallRequest)
			calls.Post("/:callId/respond", respondToCall)
		}

		messages := api.Group("/messages").Name("Messages API")
		{
			messages.Get("/", authMiddleware, listMessage)
			messages.Post("/", leaveMessage)
		}
	}
}
