package services_test

import (
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slinkhq/slink-server/pkg/internal/database"
)

func TestMain(m *testing.M) {
	source, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	database.C = source
	if err := database.RunMigration(database.C); err != nil {
		panic(err)
	}

	viper.Set("frontend", "https://slink.example.com")
	viper.Set("security.session_token_secret", "test-secret")
	viper.Set("calling.endpoint", "slink.livekit.cloud")
	viper.Set("calling.token_duration", 3600)

	os.Exit(m.Run())
}

func viperSetCredentials(t *testing.T, key, secret string) {
	t.Helper()
	viper.Set("calling.api_key", key)
	viper.Set("calling.api_secret", secret)
}

func resetTables() {
	database.C.Exec("DELETE FROM messages")
	database.C.Exec("DELETE FROM calls")
	database.C.Exec("DELETE FROM qr_codes")
	database.C.Exec("DELETE FROM accounts")
}
