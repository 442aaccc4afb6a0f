package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/DanielaMVG19/sloteats/controllers"
	"github.com/DanielaMVG19/sloteats/services"
)

func setupReservationRouter(t *testing.T) (*gin.Engine, *services.Lifecycle, *gorm.DB) {
	db := setupTestDB(t)
	ls := setupLifecycle(db)
	router := gin.Default()
	resCtrl := controllers.NewReservationController(ls)
	router.POST("/reservations", resCtrl.CreateReservation)
	router.GET("/reservations", resCtrl.ListReservations)
	router.POST("/reservations/:reservation_id/ticket", resCtrl.IssueTicket)
	router.DELETE("/reservations/:reservation_id", resCtrl.CancelReservation)
	return router, ls, db
}

func reservationPayload(scheduledAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		"restaurant":     "La Terraza",
		"customer_name":  "Daniela",
		"customer_email": "daniela@example.com",
		"party_size":     2,
		"scheduled_at":   scheduledAt.Format(time.RFC3339),
		"notes":          "window seat",
	}
}

func createReservation(t *testing.T, router *gin.Engine, scheduledAt time.Time) int {
	t.Helper()
	w := doJSON(t, router, "POST", "/reservations", reservationPayload(scheduledAt))
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	return int(data["id"].(float64))
}

func TestCreateReservation_RejectsAmbiguousTimestamp(t *testing.T) {
	router, _, _ := setupReservationRouter(t)

	payload := reservationPayload(testNow.Add(48 * time.Hour))
	// tanggal + jam terpisah gaya lama tidak diterima
	payload["scheduled_at"] = "2026-03-12 19:30"

	w := doJSON(t, router, "POST", "/reservations", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueTicket_ThrottledOnSecondCall(t *testing.T) {
	router, _, _ := setupReservationRouter(t)
	id := createReservation(t, router, testNow.Add(48*time.Hour))

	url := fmt.Sprintf("/reservations/%d/ticket", id)

	w := doJSON(t, router, "POST", url, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Contains(t, data["data_uri"], "data:application/pdf;base64,")

	w = doJSON(t, router, "POST", url, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := decodeBody(t, w)
	denial := resp["data"].(map[string]interface{})
	assert.EqualValues(t, 24, denial["wait_hours"])
}

func TestIssueTicket_UnknownReservation(t *testing.T) {
	router, _, _ := setupReservationRouter(t)

	w := doJSON(t, router, "POST", "/reservations/999/ticket", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelReservation_TooSoon(t *testing.T) {
	router, _, _ := setupReservationRouter(t)
	// 30 menit sebelum jadwal: di dalam grace margin 0.9 jam
	id := createReservation(t, router, testNow.Add(30*time.Minute))

	w := doJSON(t, router, "DELETE", fmt.Sprintf("/reservations/%d", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	denial := resp["data"].(map[string]interface{})
	assert.EqualValues(t, 0.5, denial["hours_until"])
}

func TestCancelReservation_ThenListIsEmpty(t *testing.T) {
	router, _, _ := setupReservationRouter(t)
	id := createReservation(t, router, testNow.Add(48*time.Hour))

	w := doJSON(t, router, "DELETE", fmt.Sprintf("/reservations/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// record hilang dari query berikutnya
	w = doJSON(t, router, "GET", "/reservations?email=daniela@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Nil(t, resp["data"])

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/reservations/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReservations_RequiresEmail(t *testing.T) {
	router, _, _ := setupReservationRouter(t)

	w := doJSON(t, router, "GET", "/reservations", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
