package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/slinkhq/slink-server/pkg/internal/database"
	"github.com/slinkhq/slink-server/pkg/internal/models"
)

type SessionClaims struct {
	AccountID uint `json:"account_id"`
	jwt.RegisteredClaims
}

// GetOrCreateAccount resolves an account by email, creating it on first
// sign-in. The display name is only applied to brand new accounts.
func GetOrCreateAccount(email, name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("email = ?", email).First(&account).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return account, err
		}
		account = models.Account{
			Email: email,
			Name:  name,
			Role:  "member",
		}
		if err := database.C.Create(&account).Error; err != nil {
			return account, err
		}
	}
	return account, nil
}

func CreateSessionToken(account models.Account) (string, error) {
	claims := SessionClaims{
		AccountID: account.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "slink",
			Subject:   account.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24 * 7)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tks, err := token.SignedString([]byte(viper.GetString("security.session_token_secret")))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return tks, nil
}

func ParseSessionToken(tk string) (SessionClaims, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tk, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method)
		}
		return []byte(viper.GetString("security.session_token_secret")), nil
	})
	if err != nil {
		return claims, err
	}
	if !token.Valid {
		return claims, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Authenticate exchanges a session token for the account it belongs to.
func Authenticate(tk string) (models.Account, error) {
	var account models.Account
	claims, err := ParseSessionToken(tk)
	if err != nil {
		return account, err
	}
	if err := database.C.Where("id = ?", claims.AccountID).First(&account).Error; err != nil {
		return account, fmt.Errorf("account not found: %v", err)
	}
	return account, nil
}
