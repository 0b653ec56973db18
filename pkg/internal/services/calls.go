package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/slinkhq/slink-server/pkg/internal/database"
	"github.com/slinkhq/slink-server/pkg/internal/models"
)

// CallFreshnessWindow is how long a waiting call stays eligible for pickup.
// Older waiting calls are invisible to the owner and eventually swept as missed.
const CallFreshnessWindow = time.Minute

// ErrCallAlreadySettled is returned when a call left the waiting state before
// the response arrived, so late or duplicate responses cannot overwrite it.
var ErrCallAlreadySettled = errors.New("this call is no longer waiting")

// NewCallRequest records a visitor's attempt to reach the owner of a qr code.
// Concurrent requests against the same code stay independent records.
func NewCallRequest(code models.QrCode, roomName string) (models.Call, error) {
	call := models.Call{
		ExternalID: roomName,
		Status:     models.CallStatusWaiting,
		QrCodeID:   code.ID,
		QrCode:     code,
	}

	if err := database.C.Create(&call).Error; err != nil {
		return call, err
	}

	// The voice provider creates rooms lazily on join anyway, so a failure
	// here must not fail the request itself.
	if err := CreateVoiceRoom(roomName); err != nil {
		log.Warn().Err(err).Str("room", roomName).Msg("Unable to pre-create room on voice provider...")
	}

	return call, nil
}

func GetCall(id uint) (models.Call, error) {
	var call models.Call
	if err := database.C.
		Where("id = ?", id).
		Preload("QrCode").
		First(&call).Error; err != nil {
		return call, err
	}
	return call, nil
}

// PollIncomingCall returns the newest waiting call against any of the user's
// qr codes, or nil when there is none. The read is level-triggered and does
// not consume the call; every poll re-evaluates current state.
func PollIncomingCall(user models.Account) (*models.Call, error) {
	var call models.Call
	if err := database.C.
		Joins("QrCode").
		Where(`"QrCode".account_id = ?`, user.ID).
		Where("calls.status = ?", models.CallStatusWaiting).
		Where("calls.created_at > ?", time.Now().Add(-CallFreshnessWindow)).
		Order("calls.created_at DESC").
		First(&call).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &call, nil
}

// RespondToCall settles a waiting call. The transition is guarded: it only
// succeeds when the row is still waiting, so the status check and the update
// happen in one conditional write.
func RespondToCall(call models.Call, accept bool) (models.Call, error) {
	status := models.CallStatusRejected
	if accept {
		status = models.CallStatusConnected
	}

	tx := database.C.Model(&models.Call{}).
		Where("id = ? AND status = ?", call.ID, models.CallStatusWaiting).
		Update("status", status)
	if tx.Error != nil {
		return call, tx.Error
	}
	if tx.RowsAffected == 0 {
		return call, ErrCallAlreadySettled
	}

	call.Status = status
	if !accept {
		if err := DeleteVoiceRoom(call.ExternalID); err != nil {
			log.Warn().Err(err).Str("room", call.ExternalID).Msg("Unable to delete room on voice provider...")
		}
	}

	return call, nil
}

func ListCall(user models.Account, take, offset int) ([]models.Call, error) {
	var calls []models.Call
	if err := database.C.
		Joins("QrCode").
		Where(`"QrCode".account_id = ?`, user.ID).
		Limit(take).
		Offset(offset).
		Order("calls.created_at DESC").
		Find(&calls).Error; err != nil {
		return calls, err
	}
	return calls, nil
}

// SweepStaleCalls marks waiting calls that outlived the freshness window as
// missed and reaps their rooms on the voice provider.
func SweepStaleCalls() {
	deadline := time.Now().Add(-CallFreshnessWindow)

	var stale []models.Call
	if err := database.C.
		Where("status = ? AND created_at < ?", models.CallStatusWaiting, deadline).
		Find(&stale).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when looking up stale calls...")
		return
	}
	if len(stale) == 0 {
		return
	}

	tx := database.C.Model(&models.Call{}).
		Where("status = ? AND created_at < ?", models.CallStatusWaiting, deadline).
		Update("status", models.CallStatusMissed)
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when sweeping stale calls...")
		return
	}

	for _, call := range stale {
		if err := DeleteVoiceRoom(call.ExternalID); err != nil {
			log.Warn().Err(err).Str("room", call.ExternalID).Msg("Unable to delete room on voice provider...")
		}
	}

	log.Debug().Int64("affected", tx.RowsAffected).Msg("Swept stale waiting calls as missed.")
}
