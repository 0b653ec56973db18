package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slinkhq/slink-server/pkg/internal/database"
	"github.com/slinkhq/slink-server/pkg/internal/models"
	"github.com/slinkhq/slink-server/pkg/internal/services"
)

func TestDoAutoDatabaseCleanupPurgesOldSoftDeletes(t *testing.T) {
	resetTables()
	owner, err := services.GetOrCreateAccount("owner@example.com", "Owner")
	require.NoError(t, err)
	old, err := services.NewQrCode(owner, "Old Door", "")
	require.NoError(t, err)
	recent, err := services.NewQrCode(owner, "Recent Door", "")
	require.NoError(t, err)

	require.NoError(t, database.C.Delete(&old).Error)
	require.NoError(t, database.C.Delete(&recent).Error)
	database.C.Unscoped().Model(&models.QrCode{}).Where("id = ?", old.ID).
		Update("deleted_at", time.Now().Add(-2*time.Hour))

	services.DoAutoDatabaseCleanup()

	var count int64
	database.C.Unscoped().Model(&models.QrCode{}).Where("id = ?", old.ID).Count(&count)
	assert.EqualValues(t, 0, count, "rows soft-deleted over an hour ago are purged")

	database.C.Unscoped().Model(&models.QrCode{}).Where("id = ?", recent.ID).Count(&count)
	assert.EqualValues(t, 1, count, "recently soft-deleted rows are retained")
}

func TestDoAutoDatabaseCleanupKeepsLiveRows(t *testing.T) {
	resetTables()
	owner, err := services.GetOrCreateAccount("owner@example.com", "Owner")
	require.NoError(t, err)
	code, err := services.NewQrCode(owner, "Front Door", "")
	require.NoError(t, err)

	services.DoAutoDatabaseCleanup()

	_, err = services.GetQrCode(code.ID)
	assert.NoError(t, err)
}
