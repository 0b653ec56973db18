package models

import "gorm.io/datatypes"

type Message struct {
	BaseModel

	Uuid       string            `json:"uuid"`
	Content    string            `json:"content"`
	SenderName string            `json:"sender_name"`
	Metadata   datatypes.JSONMap `json:"metadata"`

	QrCodeID uint   `json:"qr_code_id"`
	QrCode   QrCode `json:"qr_code"`
}
