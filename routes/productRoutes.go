package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/controllers"
	"github.com/scaleupmidul/sazobd/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/page-data/home", controllers.GetHomePageData)
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)
	server.POST("/products", middlewares.RequireAdmin(), controllers.CreateProduct)
	server.PUT("/products/:id", middlewares.RequireAdmin(), controllers.UpdateProduct)
	server.DELETE("/products/:id", middlewares.RequireAdmin(), controllers.DeleteProduct)
	server.POST("/products/images", middlewares.RequireAdmin(), controllers.UploadProductImages)
}
