package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderServer(t *testing.T) (*httptest.Server, *[]OrderRequest) {
	t.Helper()
	var received []OrderRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var req OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid request body"})
			return
		}
		if len(req.CartItems) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Cart is empty"})
			return
		}
		received = append(received, req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{
			ID:             1,
			OrderId:        "12345",
			Status:         "Pending",
			Total:          req.Total,
			ShippingCharge: req.ShippingCharge,
			CartItems:      req.CartItems,
			PaymentMethod:  req.PaymentInfo.PaymentMethod,
		})
	})
	mux.HandleFunc("GET /orders/12345", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Order{ID: 1, OrderId: "12345", Status: "Pending"})
	})
	mux.HandleFunc("GET /orders/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Order not found"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &received
}

func TestCheckoutSubmitsAndClearsCart(t *testing.T) {
	server, received := orderServer(t)
	client := NewClient(server.URL)

	engine := NewEngine(nil, nil)
	engine.AddItem(testProduct(1, "100101", "Gulmohar Lawn Suit", 3500, "M"), 2, "M")

	form := validForm()
	form.ShippingOptionId = "outside-dhaka"

	order, err := engine.Checkout(client, testSettings(), form)
	require.NoError(t, err)

	assert.Equal(t, "12345", order.OrderId)
	assert.Equal(t, "Pending", order.Status)
	assert.Empty(t, engine.Lines(), "cart clears after the server accepts")

	require.Len(t, *received, 1)
	submitted := (*received)[0]
	assert.Equal(t, 2*3500+120, submitted.Total, "COD total includes shipping")
	assert.Equal(t, 120, submitted.ShippingCharge)
	assert.Equal(t, "Ayesha Rahman", submitted.CustomerDetails.FirstName)
}

func TestCheckoutOnlinePaymentExcludesShippingFromTotal(t *testing.T) {
	server, received := orderServer(t)
	client := NewClient(server.URL)

	engine := NewEngine(nil, nil)
	engine.AddItem(testProduct(1, "100101", "Gulmohar Lawn Suit", 1000, "M"), 1, "M")

	form := validForm()
	form.PaymentMethod = PaymentMethodOnline
	form.ShippingOptionId = "outside-dhaka"
	form.PaymentNumber = "01909285883"
	form.OnlineMethod = "Bkash"
	form.TransactionId = "TX777"

	_, err := engine.Checkout(client, testSettings(), form)
	require.NoError(t, err)

	require.Len(t, *received, 1)
	submitted := (*received)[0]
	assert.Equal(t, 1000, submitted.Total, "shipping collected separately as advance")
	assert.Equal(t, 120, submitted.ShippingCharge, "still recorded for reporting")
	require.NotNil(t, submitted.PaymentInfo.PaymentDetails)
	assert.Equal(t, "TX777", submitted.PaymentInfo.PaymentDetails.TransactionId)
	assert.Equal(t, 1000, submitted.PaymentInfo.PaymentDetails.Amount)
}

func TestCheckoutKeepsCartOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Error creating order. Please check your information."})
	}))
	t.Cleanup(server.Close)

	var errorMessages []string
	engine := NewEngine(nil, func(message, level string) {
		if level == "error" {
			errorMessages = append(errorMessages, message)
		}
	})
	engine.AddItem(testProduct(1, "100101", "Gulmohar Lawn Suit", 3500, "M"), 2, "M")

	_, err := engine.Checkout(NewClient(server.URL), testSettings(), validForm())

	require.Error(t, err)
	assert.Equal(t, "Error creating order. Please check your information.", err.Error(),
		"server message text is surfaced when present")
	assert.Len(t, engine.Lines(), 1, "cart is kept so the customer can retry")
	assert.Contains(t, errorMessages, err.Error())
}

func TestSubmitOrderGenericFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	_, err := NewClient(server.URL).SubmitOrder(OrderRequest{CartItems: []Line{{ProductId: "1", Price: 1, Quantity: 1}}})

	require.Error(t, err)
	assert.Equal(t, "Failed to place order. Please check your details.", err.Error())
}

func TestFetchOrderByShortId(t *testing.T) {
	server, _ := orderServer(t)
	client := NewClient(server.URL)

	order, err := client.FetchOrder("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", order.OrderId)

	_, err = client.FetchOrder("9999999999")
	require.Error(t, err)
	assert.Equal(t, "Order not found", err.Error())
}

func TestLoginStoresBearerToken(t *testing.T) {
	var seenAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": "test-token"})
	})
	mux.HandleFunc("GET /orders/stats", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Stats{TotalOrders: 3, TotalRevenue: 500})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	require.NoError(t, client.Login("admin@sazobd.com", "secret"))

	stats, err := client.FetchStats()
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", seenAuth)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 500, stats.TotalRevenue)
}

func TestLoginFailureMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	t.Cleanup(server.Close)

	err := NewClient(server.URL).Login("admin@sazobd.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}
