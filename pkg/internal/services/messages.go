package services

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/slinkhq/slink-server/pkg/internal/database"
	"github.com/slinkhq/slink-server/pkg/internal/models"
)

// NewMessage stores a fire-and-forget note a visitor left on a qr code.
// There is no delivery state; the owner just sees it on the next listing.
func NewMessage(code models.QrCode, content, senderName string, metadata map[string]any) (models.Message, error) {
	message := models.Message{
		Uuid:       uuid.NewString(),
		Content:    content,
		SenderName: senderName,
		Metadata:   datatypes.JSONMap(metadata),
		QrCodeID:   code.ID,
		QrCode:     code,
	}

	if err := database.C.Create(&message).Error; err != nil {
		return message, err
	}
	return message, nil
}

func ListMessage(user models.Account, take, offset int) ([]models.Message, error) {
	var messages []models.Message
	if err := database.C.
		Joins("QrCode").
		Where(`"QrCode".account_id = ?`, user.ID).
		Limit(take).
		Offset(offset).
		Order("messages.created_at DESC").
		Find(&messages).Error; err != nil {
		return messages, err
	}
	return messages, nil
}
