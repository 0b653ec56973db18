package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slinkhq/slink-server/pkg/internal/services"
)

func TestNewMessageTagsEachRecord(t *testing.T) {
	resetTables()
	code := createTestQrCode(t, "owner@example.com")

	first, err := services.NewMessage(code, "Package at the door", "Courier", nil)
	require.NoError(t, err)
	second, err := services.NewMessage(code, "Still at the door", "Courier", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, first.Uuid)
	assert.NotEmpty(t, second.Uuid)
	assert.NotEqual(t, first.Uuid, second.Uuid)
}

func TestListMessageNewestFirst(t *testing.T) {
	resetTables()
	code := createTestQrCode(t, "owner@example.com")
	_, err := services.NewMessage(code, "First", "Visitor", nil)
	require.NoError(t, err)
	_, err = services.NewMessage(code, "Second", "Visitor", map[string]any{"source": "gate"})
	require.NoError(t, err)

	owner, err := services.GetAccount(code.AccountID)
	require.NoError(t, err)

	messages, err := services.ListMessage(owner, 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Second", messages[0].Content)
}
