package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DanielaMVG19/sloteats/services"
	"github.com/DanielaMVG19/sloteats/utils"
)

type OrderController struct {
	Lifecycle *services.Lifecycle
}

func NewOrderController(ls *services.Lifecycle) *OrderController {
	return &OrderController{Lifecycle: ls}
}

// CreateOrder membuat order baru dengan status received. Total yang
// dikirim client harus sama dengan jumlah line item (invariant dicek di
// service sebelum menyentuh store).
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type request struct {
		Restaurant       string                    `json:"restaurant"`
		CustomerName     string                    `json:"customer_name" binding:"required"`
		CustomerEmail    string                    `json:"customer_email" binding:"required,email"`
		Items            []services.OrderItemInput `json:"items" binding:"required"`
		Total            float64                   `json:"total"`
		DeliveryLocation string                    `json:"delivery_location" binding:"required"`
		DistanceKm       float64                   `json:"distance_km"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Lifecycle.CreateOrder(c.Request.Context(), services.OrderInput{
		Restaurant:       req.Restaurant,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		Items:            req.Items,
		Total:            req.Total,
		DeliveryLocation: req.DeliveryLocation,
		DistanceKm:       req.DistanceKm,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created (%.2f, %.1f km)", order.ID, order.TotalAmount, order.DistanceKm)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail satu order beserta item-itemnya.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Lifecycle.GetOrder(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus dipakai staff menggeser status order. Nilai di luar
// enum ditolak; set ulang status yang sama dianggap sukses (idempotent).
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Lifecycle.AdvanceOrderStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d moved to %s", id, req.Status)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", gin.H{
		"order_id": id,
		"status":   req.Status,
	})
}

// CancelOrder menghapus order selama masih received dan masih di dalam
// window pembatalan berbasis jarak.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	if err := oc.Lifecycle.CancelOrder(c.Request.Context(), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d cancelled", id)

	utils.RespondJSON(c, http.StatusOK, "Order cancelled", gin.H{"order_id": id})
}
