package services

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/slinkhq/slink-server/pkg/internal/database"
	"github.com/slinkhq/slink-server/pkg/internal/models"
)

// ErrDuplicateQrCodeName is returned when an owner already has a QR code
// carrying the requested name. Names only need to be unique per owner.
var ErrDuplicateQrCodeName = errors.New("a qr code with this name already exists")

func ListQrCode(user models.Account) ([]models.QrCode, error) {
	var codes []models.QrCode
	if err := database.C.
		Where(models.QrCode{AccountID: user.ID}).
		Order("created_at DESC").
		Find(&codes).Error; err != nil {
		return codes, err
	}
	return codes, nil
}

func GetQrCode(id uint) (models.QrCode, error) {
	var code models.QrCode
	if err := database.C.
		Where("id = ?", id).
		Preload("Account").
		First(&code).Error; err != nil {
		return code, err
	}
	return code, nil
}

func NewQrCode(user models.Account, name, statusMessage string) (models.QrCode, error) {
	code := models.QrCode{
		Name:          name,
		StatusMessage: statusMessage,
		IsActive:      true,
		AccountID:     user.ID,
		Account:       user,
	}

	var count int64
	if err := database.C.Model(&models.QrCode{}).
		Where("account_id = ? AND name = ?", user.ID, name).
		Count(&count).Error; err != nil {
		return code, err
	} else if count > 0 {
		return code, ErrDuplicateQrCodeName
	}

	if err := database.C.Create(&code).Error; err != nil {
		return code, err
	}
	return code, nil
}

func UpdateQrCode(code models.QrCode) (models.QrCode, error) {
	var count int64
	if err := database.C.Model(&models.QrCode{}).
		Where("account_id = ? AND name = ? AND id != ?", code.AccountID, code.Name, code.ID).
		Count(&count).Error; err != nil {
		return code, err
	} else if count > 0 {
		return code, ErrDuplicateQrCodeName
	}

	err := database.C.Model(&code).
		Select("Name", "StatusMessage", "IsActive").
		Updates(&code).Error
	return code, err
}

// GetQrCodeUrl builds the public contact page address a printed code points at.
func GetQrCodeUrl(code models.QrCode) string {
	return fmt.Sprintf("%s/user/%d/%d", viper.GetString("frontend"), code.AccountID, code.ID)
}
