package models

import "github.com/livekit/protocol/livekit"

type CallStatus = uint8

const (
	CallStatusWaiting = CallStatus(iota)
	CallStatusConnected
	CallStatusRejected
	CallStatusMissed
)

type Call struct {
	BaseModel

	// ExternalID is the room name on the voice provider side.
	ExternalID string     `json:"external_id"`
	Status     CallStatus `json:"status"`

	QrCodeID uint   `json:"qr_code_id"`
	QrCode   QrCode `json:"qr_code"`

	Participants []*livekit.ParticipantInfo `json:"participants" gorm:"-"`
}
