package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DanielaMVG19/sloteats/services"
	"github.com/DanielaMVG19/sloteats/utils"
)

type ReservationController struct {
	Lifecycle *services.Lifecycle
}

func NewReservationController(ls *services.Lifecycle) *ReservationController {
	return &ReservationController{Lifecycle: ls}
}

// CreateReservation menerima jadwal sebagai satu timestamp RFC3339
// (dengan offset), bukan pasangan tanggal + jam. Instant absolutnya
// disimpan sekali dan semua aritmatika berikutnya pakai kolom itu.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	type request struct {
		Restaurant    string `json:"restaurant" binding:"required"`
		CustomerName  string `json:"customer_name" binding:"required"`
		CustomerEmail string `json:"customer_email" binding:"required,email"`
		PartySize     int    `json:"party_size" binding:"required"`
		ScheduledAt   string `json:"scheduled_at" binding:"required"`
		Notes         string `json:"notes"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("scheduled_at must be an RFC3339 timestamp, e.g. 2026-09-01T19:30:00-05:00"))
		return
	}

	res, err := rc.Lifecycle.CreateReservation(c.Request.Context(), services.ReservationInput{
		Restaurant:    req.Restaurant,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PartySize:     req.PartySize,
		ScheduledAt:   scheduledAt,
		Notes:         req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for %s at %s", res.ID, res.RestaurantName, res.ScheduledAt)

	utils.RespondJSON(c, http.StatusCreated, "Reservation saved", res)
}

// ListReservations -> semua reservasi milik satu email, terurut jadwal.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	email := c.Query("email")

	reservations, err := rc.Lifecycle.ListReservationsFor(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// IssueTicket menerbitkan (ulang) tiket kunjungan untuk reservasi.
// Ditolak dengan 429 + wait_hours kalau tiket terakhir belum berumur
// 24 jam.
func (rc *ReservationController) IssueTicket(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	ticket, err := rc.Lifecycle.IssueTicket(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Ticket issued for reservation %d", ticket.ReservationID)

	utils.RespondJSON(c, http.StatusCreated, "Ticket issued", ticket)
}

// CancelReservation menghapus reservasi kalau jadwalnya masih cukup jauh.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	if err := rc.Lifecycle.CancelReservation(c.Request.Context(), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d cancelled", id)

	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", gin.H{"reservation_id": id})
}
