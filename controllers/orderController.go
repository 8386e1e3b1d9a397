package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/initializers"
	"github.com/scaleupmidul/sazobd/models"
	"github.com/scaleupmidul/sazobd/utils"
	"gorm.io/gorm"
)

type customerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

type paymentInfo struct {
	PaymentMethod  string                 `json:"paymentMethod"`
	PaymentDetails *models.PaymentDetails `json:"paymentDetails"`
}

type createOrderBody struct {
	CustomerDetails customerDetails    `json:"customerDetails"`
	CartItems       []models.OrderItem `json:"cartItems"`
	Total           int                `json:"total"`
	PaymentInfo     paymentInfo        `json:"paymentInfo"`
	ShippingCharge  int                `json:"shippingCharge"`
}

func orderIdExists(id string) (bool, error) {
	var count int64
	result := initializers.DB.Model(&models.Order{}).Where("order_id = ?", id).Count(&count)
	return count > 0, result.Error
}

// CreateOrder persists a checkout submission. The order freezes the
// submitted cart lines and totals as-is; prices are not revalidated
// against the catalog.
func CreateOrder(ctx *gin.Context) {
	var body createOrderBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("JSON binding error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(body.CartItems) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		return
	}

	orderId, err := utils.GenerateOrderId(utils.RandomOrderId, orderIdExists)
	if err != nil {
		log.Println("Order id generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	order := models.Order{
		OrderId:        orderId,
		FirstName:      body.CustomerDetails.FirstName,
		LastName:       body.CustomerDetails.LastName,
		Email:          body.CustomerDetails.Email,
		Phone:          body.CustomerDetails.Phone,
		Address:        body.CustomerDetails.Address,
		City:           body.CustomerDetails.City,
		CartItems:      body.CartItems,
		Total:          body.Total,
		ShippingCharge: body.ShippingCharge,
		Status:         models.StatusPending,
		Date:           time.Now().Format("2006-01-02"),
		PaymentMethod:  body.PaymentInfo.PaymentMethod,
		PaymentDetails: body.PaymentInfo.PaymentDetails,
	}

	if result := initializers.DB.Create(&order); result.Error != nil {
		log.Println("Order creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Error creating order. Please check your information.")
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

// GetOrders returns every order, newest first, for the admin panel.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.
		Preload("CartItems").
		Preload("PaymentDetails").
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrderById resolves an all-digit 5-7 character id as the
// customer-facing short order id, anything else as the internal id.
func GetOrderById(ctx *gin.Context) {
	id := ctx.Param("id")

	query := initializers.DB.Preload("CartItems").Preload("PaymentDetails")
	var order models.Order
	var result *gorm.DB
	if utils.IsShortOrderId(id) {
		result = query.Where("order_id = ?", id).First(&order)
	} else {
		internalId, err := strconv.Atoi(id)
		if err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		result = query.First(&order, internalId)
	}

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Println(result.Error)
		}
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// UpdateOrderStatus overwrites the status unconditionally; any of the
// five statuses may replace any other.
func UpdateOrderStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !models.IsValidStatus(statusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order status")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("CartItems").Preload("PaymentDetails").First(&order, orderId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	order.Status = statusData.Status
	if result := initializers.DB.Model(&order).Update("status", statusData.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Error updating order status")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order and its line items for good. There is
// no tombstone; deletion is used for test orders and payment cleanup.
func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	if result := initializers.DB.Unscoped().Delete(&order); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order removed"})
}

// GetOrderStats aggregates the dashboard numbers over the full order
// set. Revenue is product revenue only: line totals of non-Cancelled
// orders, shipping excluded.
func GetOrderStats(ctx *gin.Context) {
	var totalOrders, onlineTransactions, totalProducts int64

	if result := initializers.DB.Model(&models.Order{}).Count(&totalOrders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching dashboard stats")
		return
	}
	initializers.DB.Model(&models.Order{}).
		Where("payment_method = ?", models.PaymentMethodOnline).
		Count(&onlineTransactions)
	initializers.DB.Model(&models.Product{}).Count(&totalProducts)

	var totalRevenue int
	err := initializers.DB.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status != ?", models.StatusCancelled).
		Select("COALESCE(SUM(order_items.price * order_items.quantity), 0)").
		Scan(&totalRevenue).Error
	if err != nil {
		log.Println("Revenue aggregation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching dashboard stats")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"totalOrders":        totalOrders,
		"onlineTransactions": onlineTransactions,
		"totalRevenue":       totalRevenue,
		"totalProducts":      totalProducts,
	})
}
