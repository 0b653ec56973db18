package api_test

import (
	"bytes"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slinkhq/slink-server/pkg/internal/database"
	"github.com/slinkhq/slink-server/pkg/internal/http/api"
)

var app *fiber.App

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

	app = fiber.New(fiber.Config{
		JSONEncoder: jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder: jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	api.MapAPIs(app, "/api")

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

func doRequest(t *testing.T, method, target, token string, body any) (*nethttp.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := jsoniter.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if len(token) > 0 {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	var payload map[string]any
	raw, _ := io.ReadAll(res.Body)
	if len(raw) > 0 {
		_ = jsoniter.Unmarshal(raw, &payload)
	}
	return res, payload
}
