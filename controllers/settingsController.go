package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/initializers"
	"github.com/scaleupmidul/sazobd/models"
	"golang.org/x/crypto/bcrypt"
)

// GetSettings returns the singleton settings record. The password
// hash never leaves the server; the model excludes it from JSON.
func GetSettings(ctx *gin.Context) {
	var settings models.Settings
	if result := initializers.DB.First(&settings); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Settings not found")
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// UpdateSettings applies an admin edit wholesale. No versioning, last
// writer wins. A new admin password is re-hashed before saving.
func UpdateSettings(ctx *gin.Context) {
	var settings models.Settings
	if result := initializers.DB.First(&settings); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Settings not found")
		return
	}

	// The settings model hides the password from JSON, so the body is
	// bound through a wrapper that accepts an optional new password.
	var body struct {
		models.Settings
		AdminPassword string `json:"adminPassword"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Error updating settings")
		return
	}

	update := body.Settings
	update.ID = settings.ID
	// Save writes every column; keep the original creation time.
	update.CreatedAt = settings.CreatedAt
	update.AdminPassword = settings.AdminPassword
	if update.AdminEmail == "" {
		update.AdminEmail = settings.AdminEmail
	}

	if body.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(body.AdminPassword), 10)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		update.AdminPassword = string(hash)
	}

	if result := initializers.DB.Save(&update); result.Error != nil {
		log.Println("Settings update error:", result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Error updating settings")
		return
	}

	ctx.JSON(http.StatusOK, update)
}
