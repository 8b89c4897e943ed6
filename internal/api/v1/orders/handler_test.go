package orders_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bimma2006/dhanukayaff/internal/api/v1/orders"
	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database.DB = database.NewFileStore(t.TempDir())

	router := gin.New()
	api := router.Group("/api")
	orders.RegisterRoutes(api, func(c *gin.Context) { c.Next() })
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderLifecycle(t *testing.T) {
	router := setupRouter(t)

	// Checkout: pack {diamonds: 100, price: "LKR 100"}, playerId "12345678".
	w := doJSON(router, http.MethodPost, "/api/orders",
		`{"playerId": "12345678", "playerName": "SniperKing", "pack": {"diamonds": 100, "price": "LKR 100"}, "paymentMethod": "WhatsApp"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var created orders.CreateOrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.True(t, created.WhatsappAlert)
	assert.NotZero(t, created.Order.ID)
	assert.Equal(t, models.OrderStatusPending, created.Order.Status)
	assert.Equal(t, models.Amount("100"), created.Order.Pack.Diamonds)

	// The storefront polls the status endpoint.
	statusPath := fmt.Sprintf("/api/orders/%d/status", created.Order.ID)
	w = doJSON(router, http.MethodGet, statusPath, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "pending"}`, w.Body.String())

	// Admin completes the order.
	w = doJSON(router, http.MethodPost, "/api/orders/update",
		fmt.Sprintf(`{"id": %d, "status": "completed"}`, created.Order.ID))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, statusPath, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "completed"}`, w.Body.String())
}

func TestGetStatusUnknownOrder(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/api/orders/424242/status", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Order not found"}`, w.Body.String())
}

func TestUpdateUnknownOrder(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/orders/update", `{"id": 5, "status": "completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderRequiresPlayerID(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/orders", `{"pack": {"diamonds": 100, "price": "LKR 100"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNewestFirst(t *testing.T) {
	router := setupRouter(t)

	for _, player := range []string{"111", "222"} {
		w := doJSON(router, http.MethodPost, "/api/orders",
			fmt.Sprintf(`{"playerId": "%s", "pack": {"diamonds": 50, "price": "LKR 50"}}`, player))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var list []models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
	assert.Equal(t, "222", list[0].PlayerID)
	assert.Equal(t, "111", list[1].PlayerID)
}

func TestDeleteOrderIdempotent(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodDelete, "/api/orders/9999", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestDeleteAllOrders(t *testing.T) {
	router := setupRouter(t)

	doJSON(router, http.MethodPost, "/api/orders", `{"playerId": "111", "pack": {"diamonds": 50, "price": "LKR 50"}}`)
	w := doJSON(router, http.MethodDelete, "/api/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/orders", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}
