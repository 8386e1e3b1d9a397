package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/scaleupmidul/sazobd/initializers"
	"github.com/scaleupmidul/sazobd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetSettingsHidesPassword(t *testing.T) {
	setupTestDB(t)
	seedTestSettings(t)
	router := setupRouter()

	recorder := performRequest(router, "GET", "/settings", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	decodeBody(t, recorder, &body)
	assert.Equal(t, "admin@sazobd.com", body["adminEmail"])
	assert.NotContains(t, recorder.Body.String(), "hash")
}

func TestUpdateSettingsKeepsCreatedAtAndPassword(t *testing.T) {
	setupTestDB(t)
	seedTestSettings(t)
	router := setupRouter()

	createdAt := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, initializers.DB.Model(&models.Settings{}).
		Where("id = ?", 1).
		Update("created_at", createdAt).Error)

	recorder := performRequest(router, "PUT", "/settings", map[string]any{
		"contactPhone": "01712345678",
		"codEnabled":   false,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var stored models.Settings
	require.NoError(t, initializers.DB.First(&stored).Error)
	assert.Equal(t, "01712345678", stored.ContactPhone)
	assert.False(t, stored.CodEnabled)
	// An edit without a new password keeps the stored hash, the admin
	// email, and the original creation time.
	assert.Equal(t, "hash", stored.AdminPassword)
	assert.Equal(t, "admin@sazobd.com", stored.AdminEmail)
	assert.Equal(t, createdAt.Unix(), stored.CreatedAt.Unix())
}

func TestUpdateSettingsRehashesNewPassword(t *testing.T) {
	setupTestDB(t)
	seedTestSettings(t)
	router := setupRouter()

	recorder := performRequest(router, "PUT", "/settings", map[string]any{
		"adminEmail":    "admin@sazobd.com",
		"adminPassword": "new-secret",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var stored models.Settings
	require.NoError(t, initializers.DB.First(&stored).Error)
	assert.NotEqual(t, "hash", stored.AdminPassword)
	assert.NotEqual(t, "new-secret", stored.AdminPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.AdminPassword), []byte("new-secret")))
}
