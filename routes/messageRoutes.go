package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/controllers"
	"github.com/scaleupmidul/sazobd/middlewares"
)

func MessageRoutes(server *gin.Engine) {
	server.POST("/messages", controllers.CreateMessage)
	server.GET("/messages", middlewares.RequireAdmin(), controllers.GetMessages)
	server.PUT("/messages/:id/read", middlewares.RequireAdmin(), controllers.UpdateMessageReadStatus)
	server.DELETE("/messages/:id", middlewares.RequireAdmin(), controllers.DeleteMessage)
}
