package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Sazo BD API.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Admin login

PRODUCT
- GET "/page-data/home" - Settings plus featured products
- GET "/products" - List products (paginated, searchable)
- GET "/products/{id}" - Get product by ID
- POST "/products" - Create product (admin)
- PUT "/products/{id}" - Update product (admin)
- DELETE "/products/{id}" - Delete product (admin)
- POST "/products/images" - Upload product images (admin)

ORDER
- POST "/orders" - Create a new order
- GET "/orders/{id}" - Get order by short or internal ID
- GET "/orders" - Retrieve all orders (admin)
- GET "/orders/stats" - Dashboard statistics (admin)
- PUT "/orders/{id}/status" - Update order status (admin)
- DELETE "/orders/{id}" - Delete order (admin)

MESSAGES
- POST "/messages" - Send a contact message
- GET "/messages" - List messages (admin)
- PUT "/messages/{id}/read" - Mark message read/unread (admin)
- DELETE "/messages/{id}" - Delete message (admin)

SETTINGS
- GET "/settings" - Get site settings
- PUT "/settings" - Update site settings (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
