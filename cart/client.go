package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CustomerDetails is the checkout contact block sent to the server.
type CustomerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

type PaymentDetails struct {
	PaymentNumber string `json:"paymentNumber"`
	Method        string `json:"method"`
	Amount        int    `json:"amount"`
	TransactionId string `json:"transactionId"`
}

type PaymentInfo struct {
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

// OrderRequest is the POST /orders body.
type OrderRequest struct {
	CustomerDetails CustomerDetails `json:"customerDetails"`
	CartItems       []Line          `json:"cartItems"`
	Total           int             `json:"total"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	ShippingCharge  int             `json:"shippingCharge"`
}

// Order is the server's order record as seen by the client.
type Order struct {
	ID             uint            `json:"ID"`
	OrderId        string          `json:"orderId"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	CartItems      []Line          `json:"cartItems"`
	Total          int             `json:"total"`
	ShippingCharge int             `json:"shippingCharge"`
	Status         string          `json:"status"`
	Date           string          `json:"date"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalOrders        int `json:"totalOrders"`
	OnlineTransactions int `json:"onlineTransactions"`
	TotalRevenue       int `json:"totalRevenue"`
	TotalProducts      int `json:"totalProducts"`
}

// HomeData is the first-paint bundle: settings plus featured
// products.
type HomeData struct {
	Settings Settings  `json:"settings"`
	Products []Product `json:"products"`
}

// Client wraps the storefront API. Requests are single-shot; there is
// no automatic retry, the user re-submits manually on failure.
type Client struct {
	http  *resty.Client
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// SetToken stores the admin bearer token for subsequent calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) request() *resty.Request {
	req := c.http.R().SetHeader("Content-Type", "application/json")
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	return req
}

// apiError extracts the server's message text when there is one and
// falls back to a generic message otherwise.
func apiError(resp *resty.Response, fallback string) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return fmt.Errorf("%s", body.Message)
	}
	return fmt.Errorf("%s", fallback)
}

func (c *Client) FetchHomeData() (*HomeData, error) {
	var data HomeData
	resp, err := c.request().SetResult(&data).Get("/page-data/home")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to fetch initial page data.")
	}
	return &data, nil
}

func (c *Client) FetchSettings() (*Settings, error) {
	var settings Settings
	resp, err := c.request().SetResult(&settings).Get("/settings")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to fetch settings.")
	}
	return &settings, nil
}

func (c *Client) FetchProducts(page int, search string) ([]Product, error) {
	var result struct {
		Products []Product `json:"products"`
	}
	resp, err := c.request().
		SetQueryParam("page", fmt.Sprint(page)).
		SetQueryParam("search", search).
		SetResult(&result).
		Get("/products")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to fetch products.")
	}
	return result.Products, nil
}

// FetchOrder accepts either the short numeric order id or the
// internal id; the server disambiguates.
func (c *Client) FetchOrder(id string) (*Order, error) {
	var order Order
	resp, err := c.request().SetResult(&order).Get("/orders/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Order not found")
	}
	return &order, nil
}

// SubmitOrder posts a checkout submission. The caller keeps the cart
// intact when an error comes back.
func (c *Client) SubmitOrder(req OrderRequest) (*Order, error) {
	var order Order
	resp, err := c.request().SetBody(req).SetResult(&order).Post("/orders")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to place order. Please check your details.")
	}
	return &order, nil
}

// Login authenticates the admin and stores the returned token on the
// client.
func (c *Client) Login(email, password string) error {
	var result struct {
		Token string `json:"token"`
	}
	resp, err := c.request().
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp, "Incorrect email or password.")
	}
	c.token = result.Token
	return nil
}

func (c *Client) ListOrders() ([]Order, error) {
	var orders []Order
	resp, err := c.request().SetResult(&orders).Get("/orders")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to fetch orders")
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(id uint, status string) (*Order, error) {
	var order Order
	resp, err := c.request().
		SetBody(map[string]string{"status": status}).
		SetResult(&order).
		Put(fmt.Sprintf("/orders/%d/status", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to update order status")
	}
	return &order, nil
}

func (c *Client) DeleteOrder(id uint) error {
	resp, err := c.request().Delete(fmt.Sprintf("/orders/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp, "Failed to delete order")
	}
	return nil
}

func (c *Client) FetchStats() (*Stats, error) {
	var stats Stats
	resp, err := c.request().SetResult(&stats).Get("/orders/stats")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to fetch dashboard stats")
	}
	return &stats, nil
}

func (c *Client) SendMessage(name, email, message string) error {
	resp, err := c.request().
		SetBody(map[string]string{"name": name, "email": email, "message": message}).
		Post("/messages")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp, "Error sending message")
	}
	return nil
}
