package models

import "gorm.io/gorm"

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "Online"
)

// IsValidStatus reports whether status is one of the five order
// statuses. Transitions between them are unrestricted.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	OrderId        string          `json:"orderId" gorm:"uniqueIndex;size:16"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	CartItems      []OrderItem     `json:"cartItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total          int             `json:"total"`
	ShippingCharge int             `json:"shippingCharge"`
	Status         string          `json:"status"`
	Date           string          `json:"date"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a frozen copy of a cart line at submission time. Price
// is the add-time unit price, never re-read from the catalog.
type OrderItem struct {
	gorm.Model
	OrderID   int    `json:"-"`
	ProductId string `json:"id"`
	// Secondary short numeric product id carried for analytics.
	DisplayProductId string `json:"productId"`
	Name             string `json:"name"`
	Price            int    `json:"price"`
	Quantity         int    `json:"quantity"`
	Image            string `json:"image"`
	Size             string `json:"size"`
}

type PaymentDetails struct {
	gorm.Model
	OrderID       int    `json:"-"`
	PaymentNumber string `json:"paymentNumber"`
	Method        string `json:"method"`
	Amount        int    `json:"amount"`
	TransactionId string `json:"transactionId"`
}
