package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/initializers"
	"github.com/scaleupmidul/sazobd/models"
)

func GetMessages(ctx *gin.Context) {
	var messages []models.ContactMessage
	result := initializers.DB.Order("created_at desc").Find(&messages)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch messages")
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

func CreateMessage(ctx *gin.Context) {
	var message models.ContactMessage
	if err := ctx.ShouldBindJSON(&message); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Error sending message")
		return
	}

	message.Date = time.Now().Format("2006-01-02")
	message.IsRead = false

	if result := initializers.DB.Create(&message); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Error sending message")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

func UpdateMessageReadStatus(ctx *gin.Context) {
	var readData struct {
		IsRead bool `json:"isRead"`
	}
	if err := ctx.ShouldBindJSON(&readData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Error updating message")
		return
	}

	messageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		return
	}

	var message models.ContactMessage
	if result := initializers.DB.First(&message, messageId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		return
	}

	message.IsRead = readData.IsRead
	if result := initializers.DB.Model(&message).Update("is_read", readData.IsRead); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Error updating message")
		return
	}

	ctx.JSON(http.StatusOK, message)
}

func DeleteMessage(ctx *gin.Context) {
	messageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		return
	}

	var message models.ContactMessage
	if result := initializers.DB.First(&message, messageId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		return
	}

	if result := initializers.DB.Unscoped().Delete(&message); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete message")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message removed"})
}
