package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/controllers"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}
}
