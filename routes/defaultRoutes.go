package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
