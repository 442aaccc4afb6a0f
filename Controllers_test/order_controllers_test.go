package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/DanielaMVG19/sloteats/controllers"
	"github.com/DanielaMVG19/sloteats/models"
	"github.com/DanielaMVG19/sloteats/services"
)

func setupOrderRouter(t *testing.T) (*gin.Engine, *services.Lifecycle) {
	db := setupTestDB(t)
	ls := setupLifecycle(db)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(ls)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	router.DELETE("/orders/:order_id", orderCtrl.CancelOrder)
	return router, ls
}

func orderPayload() map[string]interface{} {
	return map[string]interface{}{
		"restaurant":     "La Terraza",
		"customer_name":  "Daniela",
		"customer_email": "daniela@example.com",
		"items": []map[string]interface{}{
			{"name": "Tacos", "quantity": 2, "price": 5.5},
			{"name": "Agua fresca", "quantity": 1, "price": 2.0},
		},
		"total":             13.0,
		"delivery_location": "Calle 5 #12",
		"distance_km":       1.5,
	}
}

func createOrder(t *testing.T, router *gin.Engine) int {
	t.Helper()
	w := doJSON(t, router, "POST", "/orders", orderPayload())
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	return int(data["id"].(float64))
}

func TestCreateAndGetOrder(t *testing.T) {
	router, _ := setupOrderRouter(t)
	id := createOrder(t, router)

	w := doJSON(t, router, "GET", fmt.Sprintf("/orders/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Order detail", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "received", data["status"])
	assert.Len(t, data["order_items"], 2)
}

func TestCreateOrder_TotalMismatch(t *testing.T) {
	router, _ := setupOrderRouter(t)

	payload := orderPayload()
	payload["total"] = 20.0

	w := doJSON(t, router, "POST", "/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	router, _ := setupOrderRouter(t)
	id := createOrder(t, router)

	url := fmt.Sprintf("/orders/%d/status", id)

	w := doJSON(t, router, "PATCH", url, map[string]interface{}{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code)

	// idempotent: request yang sama dua kali tetap 200
	w = doJSON(t, router, "PATCH", url, map[string]interface{}{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "PATCH", url, map[string]interface{}{"status": "burnt"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", fmt.Sprintf("/orders/%d", id), nil)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "preparing", data["status"])
}

func TestCancelOrder_FreshOrder(t *testing.T) {
	router, _ := setupOrderRouter(t)
	id := createOrder(t, router)

	w := doJSON(t, router, "DELETE", fmt.Sprintf("/orders/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", fmt.Sprintf("/orders/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelOrder_AfterWindow(t *testing.T) {
	router, ls := setupOrderRouter(t)
	id := createOrder(t, router)

	// maju 10 menit: window 2 menit (1.5 km) sudah lewat
	ls.Now = func() time.Time { return testNow.Add(10 * time.Minute) }

	w := doJSON(t, router, "DELETE", fmt.Sprintf("/orders/%d", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCancelOrder_PreparingIsImmune(t *testing.T) {
	router, _ := setupOrderRouter(t)
	id := createOrder(t, router)

	w := doJSON(t, router, "PATCH", fmt.Sprintf("/orders/%d/status", id),
		map[string]interface{}{"status": models.OrderStatusPreparing})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/orders/%d", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
