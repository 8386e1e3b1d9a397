package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/controllers"
	"github.com/scaleupmidul/sazobd/middlewares"
)

func SettingsRoutes(server *gin.Engine) {
	server.GET("/settings", controllers.GetSettings)
	server.PUT("/settings", middlewares.RequireAdmin(), controllers.UpdateSettings)
}
