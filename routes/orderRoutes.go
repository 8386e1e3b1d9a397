package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/controllers"
	"github.com/scaleupmidul/sazobd/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/orders", controllers.CreateOrder)
	server.GET("/orders/stats", middlewares.RequireAdmin(), controllers.GetOrderStats)
	server.GET("/orders/:id", controllers.GetOrderById)
	server.GET("/orders", middlewares.RequireAdmin(), controllers.GetOrders)
	server.PUT("/orders/:id/status", middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
	server.DELETE("/orders/:id", middlewares.RequireAdmin(), controllers.DeleteOrder)
}
