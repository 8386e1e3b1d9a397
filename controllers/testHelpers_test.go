package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scaleupmidul/sazobd/initializers"
	"github.com/scaleupmidul/sazobd/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global connection at a fresh sqlite database
// with the full schema migrated.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentDetails{},
		&models.ContactMessage{},
		&models.Settings{},
	))

	initializers.DB = db
}

// setupRouter registers the handlers without auth middleware; the
// handlers themselves are under test, not the token check.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/orders", CreateOrder)
	router.GET("/orders/stats", GetOrderStats)
	router.GET("/orders/:id", GetOrderById)
	router.GET("/orders", GetOrders)
	router.PUT("/orders/:id/status", UpdateOrderStatus)
	router.DELETE("/orders/:id", DeleteOrder)

	router.GET("/page-data/home", GetHomePageData)
	router.PUT("/products/:id", UpdateProduct)

	router.GET("/settings", GetSettings)
	router.PUT("/settings", UpdateSettings)

	return router
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}
