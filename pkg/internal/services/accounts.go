package services

import (
	"fmt"
	"strings"

	"github.com/slinkhq/slink-server/pkg/internal/database"
	"github.com/slinkhq/slink-server/pkg/internal/models"
)

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

// UpdateAccountNick sets the visitor-facing nickname. Finishing this step is
// what marks an account as onboarded.
func UpdateAccountNick(account models.Account, nick string) (models.Account, error) {
	nick = strings.TrimSpace(nick)
	if len([]rune(nick)) < 2 {
		return account, fmt.Errorf("nickname must be at least 2 characters")
	}

	account.Nick = nick
	if err := database.C.Save(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}
